package usecase

import (
	"context"
	"errors"
	"testing"

	"engagement-srv/internal/engagement"
	"engagement-srv/pkg/log"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// stubCache is a CacheRepository with canned velocity counts.
type stubCache struct {
	userCount int64
	ipCount   int64
	err       error

	acquired   bool
	acquireErr error
	bumpErr    error
}

func (s *stubCache) BumpViewVelocity(ctx context.Context, userID, ip string) error {
	return s.bumpErr
}

func (s *stubCache) CountRecentViews(ctx context.Context, userID, ip string) (int64, int64, error) {
	return s.userCount, s.ipCount, s.err
}

func (s *stubCache) AcquireLikeSlot(ctx context.Context, postID, userID string) (bool, error) {
	return s.acquired, s.acquireErr
}

func newTestDetector(cache *stubCache) *detector {
	l := log.Init(log.ZapConfig{Level: "error"})
	return newDetector(cache, l, DetectorConfig{})
}

func TestDetectorClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("browser user agent passes", func(t *testing.T) {
		d := newTestDetector(&stubCache{})
		v := d.Classify(ctx, engagement.Signal{UserAgent: chromeUA})

		if v.IsBot {
			t.Errorf("browser UA classified as bot: %+v", v)
		}
		if v.BotScore != 0 {
			t.Errorf("BotScore mismatch: got %d, want 0", v.BotScore)
		}
	})

	t.Run("pattern match forces bot", func(t *testing.T) {
		cases := []struct {
			ua   string
			want int
		}{
			// pattern 30 + short 20 + no Mozilla 15
			{"curl/7.68.0", 65},
			{"python-urllib/3.9", 65},
			// pattern 30 only: long UA carrying the Mozilla token
			{"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", 40},
		}

		for _, tc := range cases {
			d := newTestDetector(&stubCache{})
			v := d.Classify(ctx, engagement.Signal{UserAgent: tc.ua})

			if !v.IsBot {
				t.Errorf("%q not classified as bot", tc.ua)
			}
			if v.BotScore != tc.want {
				t.Errorf("%q score mismatch: got %d, want %d", tc.ua, v.BotScore, tc.want)
			}
		}
	})

	t.Run("weak signals alone stay under threshold", func(t *testing.T) {
		d := newTestDetector(&stubCache{})
		// short 20 + no Mozilla 15 = 35 < 50
		v := d.Classify(ctx, engagement.Signal{UserAgent: "SomeApp/1.0"})

		if v.IsBot {
			t.Errorf("weak-signal UA classified as bot: %+v", v)
		}
		if v.BotScore != 35 {
			t.Errorf("BotScore mismatch: got %d, want 35", v.BotScore)
		}
	})

	t.Run("compatible without MSIE", func(t *testing.T) {
		d := newTestDetector(&stubCache{})
		v := d.Classify(ctx, engagement.Signal{UserAgent: "Mozilla/5.0 (compatible; Acme/1.0; +https://acme.example)"})

		if v.IsBot {
			t.Errorf("compatible UA classified as bot: %+v", v)
		}
		if v.BotScore != 10 {
			t.Errorf("BotScore mismatch: got %d, want 10", v.BotScore)
		}
	})

	t.Run("compatible with MSIE is not penalized", func(t *testing.T) {
		d := newTestDetector(&stubCache{})
		v := d.Classify(ctx, engagement.Signal{UserAgent: "Mozilla/4.0 (compatible; MSIE 7.0; Windows NT 6.0)"})

		if v.BotScore != 0 {
			t.Errorf("BotScore mismatch: got %d, want 0", v.BotScore)
		}
	})

	t.Run("automation hint forces bot regardless of score", func(t *testing.T) {
		d := newTestDetector(&stubCache{})
		v := d.Classify(ctx, engagement.Signal{UserAgent: chromeUA, IsAutomated: true})

		if !v.IsBot {
			t.Error("automated client not classified as bot")
		}
		if v.BotScore != 0 {
			t.Errorf("BotScore mismatch: got %d, want 0", v.BotScore)
		}
	})

	t.Run("velocity burst forces bot", func(t *testing.T) {
		d := newTestDetector(&stubCache{userCount: 11})
		v := d.Classify(ctx, engagement.Signal{UserAgent: chromeUA, UserID: "u1"})

		if !v.IsBot {
			t.Error("bursting user not classified as bot")
		}
		if v.BotScore != 75 {
			t.Errorf("BotScore mismatch: got %d, want 75", v.BotScore)
		}
	})

	t.Run("velocity burst by IP alone", func(t *testing.T) {
		d := newTestDetector(&stubCache{ipCount: 11})
		v := d.Classify(ctx, engagement.Signal{UserAgent: chromeUA, IPAddress: "10.0.0.1"})

		if !v.IsBot {
			t.Error("bursting IP not classified as bot")
		}
	})

	t.Run("velocity at the burst limit passes", func(t *testing.T) {
		d := newTestDetector(&stubCache{userCount: 10, ipCount: 10})
		v := d.Classify(ctx, engagement.Signal{UserAgent: chromeUA})

		if v.IsBot {
			t.Errorf("at-limit velocity classified as bot: %+v", v)
		}
	})

	t.Run("velocity lookup failure is advisory", func(t *testing.T) {
		d := newTestDetector(&stubCache{err: errors.New("redis down")})
		v := d.Classify(ctx, engagement.Signal{UserAgent: chromeUA})

		if v.IsBot {
			t.Errorf("cache outage classified as bot: %+v", v)
		}
	})

	t.Run("score never exceeds the cap", func(t *testing.T) {
		d := newTestDetector(&stubCache{userCount: 100})
		v := d.Classify(ctx, engagement.Signal{UserAgent: "curl/7.68.0"})

		if v.BotScore > 100 {
			t.Errorf("BotScore above cap: %d", v.BotScore)
		}
	})
}
