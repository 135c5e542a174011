package store

import (
	"context"
	"fmt"

	"github.com/salmon302/DSATrain-sub001/ent"
	"github.com/salmon302/DSATrain-sub001/ent/item"
	"github.com/salmon302/DSATrain-sub001/internal/catalog"
)

// ItemRepo implements catalog.Index over the items table. Skill tags live
// in a JSON column, so tag and difficulty matching happens in memory after
// the scalar predicates narrow the scan.
type ItemRepo struct {
	client *ent.Client
}

func (s *Store) ItemRepo() *ItemRepo {
	return &ItemRepo{client: s.client}
}

// Query returns the catalog items matching the filter, ordered by ID.
func (r *ItemRepo) Query(ctx context.Context, f catalog.Filter) ([]catalog.Item, error) {
	q := r.client.Item.Query().Order(ent.Asc(item.FieldItemID))
	if f.MinQuality > 0 {
		q = q.Where(item.QualityScoreGTE(f.MinQuality))
	}
	if f.MinRelevance > 0 {
		q = q.Where(item.RelevanceScoreGTE(f.MinRelevance))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	var out []catalog.Item
	for _, row := range rows {
		it := itemFromRow(row)
		if !f.Matches(it) {
			continue
		}
		out = append(out, it)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

// Put inserts or replaces one catalog item.
func (r *ItemRepo) Put(ctx context.Context, it catalog.Item) error {
	return putItem(ctx, r.client.Item, it)
}

func putItem(ctx context.Context, c *ent.ItemClient, it catalog.Item) error {
	existing, err := c.Query().
		Where(item.ItemID(it.ID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = c.Create().
			SetItemID(it.ID).
			SetSkillTags(it.SkillTags).
			SetDifficultyBand(string(it.Band)).
			SetDifficultySublevel(it.Sublevel).
			SetQualityScore(it.Quality).
			SetRelevanceScore(it.Relevance).
			SetEstimatedMinutes(it.EstimatedMins).
			Save(ctx)
	case err == nil:
		_, err = existing.Update().
			SetSkillTags(it.SkillTags).
			SetDifficultyBand(string(it.Band)).
			SetDifficultySublevel(it.Sublevel).
			SetQualityScore(it.Quality).
			SetRelevanceScore(it.Relevance).
			SetEstimatedMinutes(it.EstimatedMins).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("store item %s: %w", it.ID, err)
	}
	return nil
}

// Import bulk-loads items inside one transaction, replacing existing rows
// with the same ID. A validation failure rolls the whole batch back.
func (r *ItemRepo) Import(ctx context.Context, items []catalog.Item) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin item import: %w", err)
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("import item %s: %w", it.ID, err)
		}
		if err := putItem(ctx, tx.Item, it); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit item import: %w", err)
	}
	return nil
}

// Count returns the catalog size.
func (r *ItemRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Item.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func itemFromRow(row *ent.Item) catalog.Item {
	return catalog.Item{
		ID:            row.ItemID,
		SkillTags:     row.SkillTags,
		Band:          catalog.Band(row.DifficultyBand),
		Sublevel:      row.DifficultySublevel,
		Quality:       row.QualityScore,
		Relevance:     row.RelevanceScore,
		EstimatedMins: row.EstimatedMinutes,
	}
}
