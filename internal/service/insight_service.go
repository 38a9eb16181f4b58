package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mitrasinergi/sales-api/internal/domain"
	"github.com/mitrasinergi/sales-api/internal/insight"
	"go.uber.org/zap"
)

// InsightService attaches narrative commentary to a dashboard snapshot.
// The stats are computed locally first; a failure of the external analysis
// service never invalidates them, it only downgrades the commentary to a
// locally generated summary.
type InsightService struct {
	dashboard *DashboardService
	client    *insight.Client
	logger    *zap.Logger
}

func NewInsightService(dashboard *DashboardService, client *insight.Client, logger *zap.Logger) *InsightService {
	return &InsightService{
		dashboard: dashboard,
		client:    client,
		logger:    logger,
	}
}

// GetInsight computes the year's stats and asks the analysis service for
// commentary. Generated is true when the commentary came from the external
// service, false when the local fallback was used.
func (s *InsightService) GetInsight(ctx context.Context, year int) (*domain.InsightResponse, error) {
	stats, err := s.dashboard.GetStats(ctx, year)
	if err != nil {
		return nil, err
	}

	resp := &domain.InsightResponse{
		Year:  year,
		Stats: *stats,
	}

	if s.client != nil {
		commentary, err := s.client.Commentary(ctx, year, stats)
		if err == nil {
			resp.Commentary = commentary
			resp.Generated = true
			return resp, nil
		}
		s.logger.Warn("insight service unavailable, using fallback commentary",
			zap.Int("year", year),
			zap.Error(err))
	}

	resp.Commentary = fallbackCommentary(stats)
	return resp, nil
}

// fallbackCommentary builds a plain-language summary from the stats alone
func fallbackCommentary(stats *domain.DashboardStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total income for %d is Rp %d", stats.Year, stats.TotalIncome)
	if stats.Target > 0 {
		fmt.Fprintf(&b, " against a target of Rp %d (%.1f%% achievement).", stats.Target, stats.AchievementPercent)
		if stats.Gap > 0 {
			fmt.Fprintf(&b, " Rp %d remains to reach the target.", stats.Gap)
		} else {
			fmt.Fprintf(&b, " The target has been exceeded by Rp %d.", -stats.Gap)
		}
	} else {
		b.WriteString(". No income target has been set for this year.")
	}

	var best *domain.QuarterSummary
	for i := range stats.QuarterlyBreakdown {
		q := &stats.QuarterlyBreakdown[i]
		if best == nil || q.Income > best.Income {
			best = q
		}
	}
	if best != nil && best.Income > 0 {
		fmt.Fprintf(&b, " %s is the strongest quarter with Rp %d.", best.Quarter, best.Income)
	}

	return b.String()
}
