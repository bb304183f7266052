package usecase

import (
	"context"
	"strings"

	"engagement-srv/internal/engagement"
	"engagement-srv/internal/engagement/repository"
	"engagement-srv/pkg/log"
)

// defaultBotPatterns is the fixed substring table matched case-insensitively
// against the user agent.
var defaultBotPatterns = []string{
	"bot", "crawler", "spider", "scraper",
	"facebook", "twitter", "linkedin",
	"curl", "wget", "python", "java",
	"phantom", "selenium", "headless",
	"puppeteer", "playwright", "webdriver",
}

const (
	patternScore    = 30
	shortUAScore    = 20
	noMozillaScore  = 15
	compatibleScore = 10
	velocityScore   = 75

	defaultScoreThreshold = 50
	defaultVelocityBurst  = 10

	shortUALength = 20
	maxBotScore   = 100
)

// DetectorConfig tunes the classifier. Zero values take the defaults above.
type DetectorConfig struct {
	Patterns       []string
	ScoreThreshold int
	VelocityBurst  int
}

type detector struct {
	cache repository.CacheRepository
	l     log.Logger
	cfg   DetectorConfig
}

func newDetector(cache repository.CacheRepository, l log.Logger, cfg DetectorConfig) *detector {
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = defaultBotPatterns
	}
	if cfg.ScoreThreshold <= 0 {
		cfg.ScoreThreshold = defaultScoreThreshold
	}
	if cfg.VelocityBurst <= 0 {
		cfg.VelocityBurst = defaultVelocityBurst
	}

	return &detector{
		cache: cache,
		l:     l,
		cfg:   cfg,
	}
}

// Classify scores one event synchronously before persistence. The verdict is
// stored on the ledger row and never recomputed.
func (d *detector) Classify(ctx context.Context, signal engagement.Signal) engagement.Verdict {
	score := 0
	forced := false
	var reasons []string

	ua := signal.UserAgent
	lowerUA := strings.ToLower(ua)

	for _, pattern := range d.cfg.Patterns {
		if strings.Contains(lowerUA, pattern) {
			score += patternScore
			forced = true
			reasons = append(reasons, "user agent matches bot pattern "+pattern)
			break
		}
	}

	if len(ua) < shortUALength {
		score += shortUAScore
		reasons = append(reasons, "user agent missing or too short")
	}
	if !strings.Contains(ua, "Mozilla") {
		score += noMozillaScore
		reasons = append(reasons, "user agent lacks Mozilla token")
	}
	if strings.Contains(ua, "compatible") && !strings.Contains(ua, "MSIE") {
		score += compatibleScore
		reasons = append(reasons, "user agent claims compatible without MSIE")
	}

	if signal.IsAutomated {
		forced = true
		reasons = append(reasons, "client reported automation")
	}

	// Velocity is advisory: a cache failure downgrades to zero counts
	// rather than blocking the view.
	userCount, ipCount, err := d.cache.CountRecentViews(ctx, signal.UserID, signal.IPAddress)
	if err != nil {
		d.l.Warnf(ctx, "engagement.usecase.Classify: Velocity lookup failed, skipping check: %v", err)
	} else if userCount > int64(d.cfg.VelocityBurst) || ipCount > int64(d.cfg.VelocityBurst) {
		forced = true
		if score < velocityScore {
			score = velocityScore
		}
		reasons = append(reasons, "view velocity exceeds burst limit")
	}

	if score > maxBotScore {
		score = maxBotScore
	}

	return engagement.Verdict{
		IsBot:    forced || score >= d.cfg.ScoreThreshold,
		BotScore: score,
		Reasons:  reasons,
	}
}
