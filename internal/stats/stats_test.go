package stats_test

import (
	"testing"

	"github.com/mitrasinergi/sales-api/internal/domain"
	"github.com/mitrasinergi/sales-api/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func project(pic, product string, category domain.ProjectCategory, quarter domain.Quarter, nettGP int64) domain.Project {
	return domain.Project{
		BusinessPartner: "BP",
		EndUser:         "EU",
		Category:        category,
		Product:         product,
		PIC:             pic,
		NettGP:          nettGP,
		Quarter:         quarter,
		Year:            2025,
	}
}

func TestComputeDashboardStats_Example(t *testing.T) {
	projects := []domain.Project{
		project("X", "P1", domain.CategoryImplementation, domain.QuarterQ1, 100),
		project("Y", "P1", domain.CategoryMaintenance, domain.QuarterQ1, 200),
	}
	target := &domain.IncomeTarget{
		Year:         2025,
		Q1Target:     200,
		YearlyTarget: 200,
	}

	got := stats.ComputeDashboardStats(projects, target)

	assert.Equal(t, int64(300), got.TotalIncome)
	assert.Equal(t, 150.0, got.AchievementPercent)
	assert.Equal(t, int64(-100), got.Gap)

	require.Len(t, got.QuarterlyBreakdown, 4)
	assert.Equal(t, domain.QuarterQ1, got.QuarterlyBreakdown[0].Quarter)
	assert.Equal(t, int64(300), got.QuarterlyBreakdown[0].Income)
	assert.Equal(t, int64(200), got.QuarterlyBreakdown[0].Target)
	for _, qs := range got.QuarterlyBreakdown[1:] {
		assert.Zero(t, qs.Income)
	}

	require.Len(t, got.CategoryBreakdown, 2)
	assert.Equal(t, domain.CategorySlice{Name: "Implementation", Value: 100}, got.CategoryBreakdown[0])
	assert.Equal(t, domain.CategorySlice{Name: "Maintenance", Value: 200}, got.CategoryBreakdown[1])
}

func TestComputeDashboardStats_EmptyInput(t *testing.T) {
	got := stats.ComputeDashboardStats(nil, nil)

	assert.Zero(t, got.TotalIncome)
	assert.Zero(t, got.Target)
	assert.Zero(t, got.AchievementPercent)
	assert.Zero(t, got.Gap)
	assert.Empty(t, got.CategoryBreakdown)
	require.Len(t, got.QuarterlyBreakdown, 4)
	for _, qs := range got.QuarterlyBreakdown {
		assert.Zero(t, qs.Income)
		assert.Zero(t, qs.Target)
	}
}

func TestComputeDashboardStats_NilTarget(t *testing.T) {
	projects := []domain.Project{
		project("X", "", domain.CategoryLSC, domain.QuarterQ3, 5000),
	}

	got := stats.ComputeDashboardStats(projects, nil)

	assert.Equal(t, int64(5000), got.TotalIncome)
	assert.Zero(t, got.Target)
	// target == 0 means achievement stays 0 regardless of income
	assert.Zero(t, got.AchievementPercent)
	assert.Equal(t, int64(-5000), got.Gap)
}

func TestComputeDashboardStats_Partitioning(t *testing.T) {
	projects := []domain.Project{
		project("A", "P1", domain.CategoryImplementation, domain.QuarterQ1, 10),
		project("B", "P2", domain.CategoryMaintenance, domain.QuarterQ2, 20),
		project("C", "P1", domain.CategoryLSC, domain.QuarterQ3, 30),
		project("A", "", domain.CategoryImplementation, domain.QuarterQ4, 40),
		project("B", "P3", domain.CategoryMaintenance, domain.QuarterQ2, 50),
	}

	got := stats.ComputeDashboardStats(projects, nil)

	var quarterSum, categorySum int64
	for _, qs := range got.QuarterlyBreakdown {
		quarterSum += qs.Income
	}
	for _, cs := range got.CategoryBreakdown {
		categorySum += cs.Value
	}
	assert.Equal(t, got.TotalIncome, quarterSum)
	assert.Equal(t, got.TotalIncome, categorySum)
}

func TestComputeDashboardStats_GapCanBePositive(t *testing.T) {
	projects := []domain.Project{
		project("X", "P1", domain.CategoryImplementation, domain.QuarterQ1, 300),
	}
	target := &domain.IncomeTarget{YearlyTarget: 1000}

	got := stats.ComputeDashboardStats(projects, target)

	assert.Equal(t, int64(700), got.Gap)
	assert.Equal(t, 30.0, got.AchievementPercent)
}

func TestRankByPIC_SortsAndTruncates(t *testing.T) {
	projects := []domain.Project{
		project("Andi", "P1", domain.CategoryImplementation, domain.QuarterQ1, 100),
		project("Budi", "P1", domain.CategoryImplementation, domain.QuarterQ1, 300),
		project("Citra", "P1", domain.CategoryImplementation, domain.QuarterQ1, 200),
		project("Dewi", "P1", domain.CategoryImplementation, domain.QuarterQ1, 50),
		project("Eka", "P1", domain.CategoryImplementation, domain.QuarterQ1, 400),
		project("Fajar", "P1", domain.CategoryImplementation, domain.QuarterQ1, 25),
		project("Andi", "P1", domain.CategoryImplementation, domain.QuarterQ2, 150),
	}

	got := stats.RankByPIC(projects, 5)

	require.Len(t, got, 5)
	assert.Equal(t, "Eka", got[0].PIC)
	assert.Equal(t, "Budi", got[1].PIC)
	assert.Equal(t, "Andi", got[2].PIC)
	assert.Equal(t, int64(250), got[2].TotalIncome)
	assert.Equal(t, 2, got[2].ProjectCount)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].TotalIncome, got[i].TotalIncome)
	}
}

func TestRankByPIC_LengthIsMinOfLimitAndKeys(t *testing.T) {
	projects := []domain.Project{
		project("Andi", "P1", domain.CategoryImplementation, domain.QuarterQ1, 100),
		project("Budi", "P1", domain.CategoryImplementation, domain.QuarterQ1, 200),
	}

	assert.Len(t, stats.RankByPIC(projects, 5), 2)
	assert.Len(t, stats.RankByPIC(projects, 1), 1)
	assert.Empty(t, stats.RankByPIC(nil, 5))
}

func TestRankByPIC_TieBreaksByAscendingKey(t *testing.T) {
	projects := []domain.Project{
		project("Citra", "P1", domain.CategoryImplementation, domain.QuarterQ1, 100),
		project("Andi", "P1", domain.CategoryImplementation, domain.QuarterQ1, 100),
		project("Budi", "P1", domain.CategoryImplementation, domain.QuarterQ1, 100),
	}

	got := stats.RankByPIC(projects, 5)

	require.Len(t, got, 3)
	assert.Equal(t, "Andi", got[0].PIC)
	assert.Equal(t, "Budi", got[1].PIC)
	assert.Equal(t, "Citra", got[2].PIC)
}

func TestRankByProduct_Example(t *testing.T) {
	projects := []domain.Project{
		project("X", "P1", domain.CategoryImplementation, domain.QuarterQ1, 100),
		project("Y", "P1", domain.CategoryMaintenance, domain.QuarterQ1, 200),
	}

	got := stats.RankByProduct(projects, 5)

	require.Len(t, got, 1)
	assert.Equal(t, "P1", got[0].Product)
	assert.Equal(t, int64(300), got[0].TotalIncome)
	assert.Equal(t, 2, got[0].ProjectCount)

	require.Len(t, got[0].Contributors, 2)
	assert.Equal(t, domain.PICContribution{PIC: "Y", Income: 200}, got[0].Contributors[0])
	assert.Equal(t, domain.PICContribution{PIC: "X", Income: 100}, got[0].Contributors[1])
}

func TestRankByProduct_ContributionsSumToTotal(t *testing.T) {
	projects := []domain.Project{
		project("A", "CRM Suite", domain.CategoryImplementation, domain.QuarterQ1, 120),
		project("B", "CRM Suite", domain.CategoryMaintenance, domain.QuarterQ2, 80),
		project("A", "ERP Core", domain.CategoryImplementation, domain.QuarterQ1, 900),
		project("C", "CRM Suite", domain.CategoryLSC, domain.QuarterQ3, 40),
	}

	got := stats.RankByProduct(projects, 5)

	for _, pr := range got {
		var sum int64
		for _, c := range pr.Contributors {
			sum += c.Income
		}
		assert.Equal(t, pr.TotalIncome, sum, "contributors of %s must sum to product total", pr.Product)
	}
}

func TestRankByProduct_MissingProductGroupsUnderNA(t *testing.T) {
	// One record with an empty product and one with no product at all must
	// land in the same N/A bucket.
	projects := []domain.Project{
		project("X", "", domain.CategoryImplementation, domain.QuarterQ1, 100),
		{
			BusinessPartner: "BP",
			EndUser:         "EU",
			Category:        domain.CategoryMaintenance,
			PIC:             "Y",
			NettGP:          200,
			Quarter:         domain.QuarterQ1,
			Year:            2025,
		},
	}

	got := stats.RankByProduct(projects, 5)

	require.Len(t, got, 1)
	assert.Equal(t, domain.ProductNA, got[0].Product)
	assert.Equal(t, int64(300), got[0].TotalIncome)
	assert.Equal(t, 2, got[0].ProjectCount)
}

func TestRankByProduct_OrderIndependent(t *testing.T) {
	forward := []domain.Project{
		project("A", "P1", domain.CategoryImplementation, domain.QuarterQ1, 100),
		project("B", "P2", domain.CategoryImplementation, domain.QuarterQ1, 100),
		project("C", "P3", domain.CategoryImplementation, domain.QuarterQ1, 100),
	}
	reversed := []domain.Project{forward[2], forward[1], forward[0]}

	assert.Equal(t, stats.RankByProduct(forward, 5), stats.RankByProduct(reversed, 5))
}

func TestRankings_DefaultLimit(t *testing.T) {
	projects := make([]domain.Project, 0, 8)
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for i, n := range names {
		projects = append(projects, project(n, "P"+n, domain.CategoryImplementation, domain.QuarterQ1, int64(100*(i+1))))
	}

	// limit <= 0 falls back to the default of 5
	assert.Len(t, stats.RankByPIC(projects, 0), stats.DefaultRankingLimit)
	assert.Len(t, stats.RankByProduct(projects, -1), stats.DefaultRankingLimit)
}
