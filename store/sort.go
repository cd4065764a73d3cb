package store

import (
	"cmp"
	"slices"
	"strings"

	"assetbook/models"
)

// 列表视图可用的排序字段
const (
	SortByID           = "id"
	SortByCategory     = "category"
	SortBySubcategory  = "subcategory"
	SortByName         = "name"
	SortByAmount       = "amount"
	SortByMaturityDate = "maturity_date"
	SortByReminder     = "reminder"
	SortByNote         = "note"
)

// SortAssets 原地稳定排序。未设置到期日的记录总排在最后；未知字段按编号排序。
func SortAssets(list []models.Asset, field string, desc bool) {
	field = strings.ToLower(field)
	compare := assetComparator(field)
	slices.SortStableFunc(list, func(a, b models.Asset) int {
		if field == SortByMaturityDate && (a.MaturityDate == nil) != (b.MaturityDate == nil) {
			if a.MaturityDate == nil {
				return 1
			}
			return -1
		}
		c := compare(a, b)
		if desc {
			c = -c
		}
		return c
	})
}

func assetComparator(field string) func(a, b models.Asset) int {
	switch field {
	case SortByCategory:
		return func(a, b models.Asset) int { return strings.Compare(a.Category, b.Category) }
	case SortBySubcategory:
		return func(a, b models.Asset) int { return strings.Compare(a.Subcategory, b.Subcategory) }
	case SortByName:
		return func(a, b models.Asset) int { return strings.Compare(a.Name, b.Name) }
	case SortByAmount:
		return func(a, b models.Asset) int {
			av, _ := a.Amount.Int64()
			bv, _ := b.Amount.Int64()
			return cmp.Compare(av, bv)
		}
	case SortByMaturityDate:
		return func(a, b models.Asset) int {
			if a.MaturityDate == nil || b.MaturityDate == nil {
				return 0
			}
			return a.MaturityDate.Time().Compare(b.MaturityDate.Time())
		}
	case SortByReminder:
		return func(a, b models.Asset) int {
			ad, _ := a.Reminder.Days()
			bd, _ := b.Reminder.Days()
			return cmp.Compare(ad, bd)
		}
	case SortByNote:
		return func(a, b models.Asset) int { return strings.Compare(a.Note, b.Note) }
	default:
		return func(a, b models.Asset) int { return cmp.Compare(a.ID, b.ID) }
	}
}
