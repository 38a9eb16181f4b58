// Package stats implements the income aggregation and ranking computations
// behind the dashboard. Every function is pure and total: it reads an
// immutable snapshot of project records, retains no state between calls, and
// produces well-defined zero-valued output for empty input.
package stats

import (
	"sort"

	"github.com/mitrasinergi/sales-api/internal/domain"
)

// DefaultRankingLimit is the leaderboard size used when the caller does not
// ask for a specific limit.
const DefaultRankingLimit = 5

// ComputeDashboardStats derives the yearly overview from a snapshot of
// projects already filtered to one year, plus the matching target (nil when
// no target is recorded for the year).
//
// The quarterly and category breakdowns partition the input exactly: every
// record lands in one quarter bucket and one category bucket, so the bucket
// sums both equal TotalIncome.
func ComputeDashboardStats(projects []domain.Project, target *domain.IncomeTarget) domain.DashboardStats {
	var totalIncome int64
	for i := range projects {
		totalIncome += projects[i].NettGP
	}

	var yearlyTarget int64
	if target != nil {
		yearlyTarget = target.YearlyTarget
	}

	achievement := 0.0
	if yearlyTarget > 0 {
		achievement = float64(totalIncome) / float64(yearlyTarget) * 100
	}

	quarterly := make([]domain.QuarterSummary, 0, len(domain.Quarters))
	for _, q := range domain.Quarters {
		var income int64
		for i := range projects {
			if projects[i].Quarter == q {
				income += projects[i].NettGP
			}
		}
		var qTarget int64
		if target != nil {
			qTarget = target.QuarterTarget(q)
		}
		quarterly = append(quarterly, domain.QuarterSummary{
			Quarter: q,
			Income:  income,
			Target:  qTarget,
		})
	}

	stats := domain.DashboardStats{
		TotalIncome:        totalIncome,
		Target:             yearlyTarget,
		AchievementPercent: achievement,
		Gap:                yearlyTarget - totalIncome,
		QuarterlyBreakdown: quarterly,
		CategoryBreakdown:  categoryBreakdown(projects),
	}
	return stats
}

// categoryBreakdown groups income by category in first-seen input order.
// Categories with no records do not appear.
func categoryBreakdown(projects []domain.Project) []domain.CategorySlice {
	index := make(map[string]int)
	slices := make([]domain.CategorySlice, 0, 3)
	for i := range projects {
		name := string(projects[i].Category)
		pos, seen := index[name]
		if !seen {
			pos = len(slices)
			index[name] = pos
			slices = append(slices, domain.CategorySlice{Name: name})
		}
		slices[pos].Value += projects[i].NettGP
	}
	return slices
}

// group is an intermediate bucket shared by both ranking variants.
type group struct {
	key          string
	totalIncome  int64
	projectCount int
	members      []int // indexes into the input slice
}

// rankGroups groups projects by keyOf, sorts the groups by descending income
// and truncates to limit. Ties on income break by ascending key so the
// ordering is deterministic regardless of map iteration order.
func rankGroups(projects []domain.Project, keyOf func(*domain.Project) string, limit int) []group {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	index := make(map[string]int)
	groups := make([]group, 0)
	for i := range projects {
		key := keyOf(&projects[i])
		if key == "" {
			key = domain.ProductNA
		}
		pos, seen := index[key]
		if !seen {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, group{key: key})
		}
		groups[pos].totalIncome += projects[i].NettGP
		groups[pos].projectCount++
		groups[pos].members = append(groups[pos].members, i)
	}

	sort.Slice(groups, func(a, b int) bool {
		if groups[a].totalIncome != groups[b].totalIncome {
			return groups[a].totalIncome > groups[b].totalIncome
		}
		return groups[a].key < groups[b].key
	})

	if len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}

// RankByPIC returns the top-limit persons-in-charge by total income.
func RankByPIC(projects []domain.Project, limit int) []domain.PICRanking {
	groups := rankGroups(projects, func(p *domain.Project) string { return p.PIC }, limit)

	rankings := make([]domain.PICRanking, len(groups))
	for i, g := range groups {
		rankings[i] = domain.PICRanking{
			PIC:          g.key,
			TotalIncome:  g.totalIncome,
			ProjectCount: g.projectCount,
		}
	}
	return rankings
}

// RankByProduct returns the top-limit products by total income. Each entry
// carries a per-PIC contribution breakdown whose incomes sum to the product's
// total, sorted descending with the same deterministic tie-break.
func RankByProduct(projects []domain.Project, limit int) []domain.ProductRanking {
	groups := rankGroups(projects, func(p *domain.Project) string { return p.ProductOrNA() }, limit)

	rankings := make([]domain.ProductRanking, len(groups))
	for i, g := range groups {
		rankings[i] = domain.ProductRanking{
			Product:      g.key,
			TotalIncome:  g.totalIncome,
			ProjectCount: g.projectCount,
			Contributors: contributorBreakdown(projects, g.members),
		}
	}
	return rankings
}

// contributorBreakdown sums income per PIC over the given member records.
func contributorBreakdown(projects []domain.Project, members []int) []domain.PICContribution {
	index := make(map[string]int)
	contribs := make([]domain.PICContribution, 0)
	for _, m := range members {
		pic := projects[m].PIC
		pos, seen := index[pic]
		if !seen {
			pos = len(contribs)
			index[pic] = pos
			contribs = append(contribs, domain.PICContribution{PIC: pic})
		}
		contribs[pos].Income += projects[m].NettGP
	}

	sort.Slice(contribs, func(a, b int) bool {
		if contribs[a].Income != contribs[b].Income {
			return contribs[a].Income > contribs[b].Income
		}
		return contribs[a].PIC < contribs[b].PIC
	})
	return contribs
}
