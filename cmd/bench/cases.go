// README: Smoke test cases; includes HTTP, DB, Redis, and performance checks.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name  string
	Focus string
	Run   func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

func benchPreferences() map[string]any {
	return map[string]any{
		"origin":     "New York, USA",
		"start_date": "2026-09-07",
		"end_date":   "2026-09-14",
		"budget":     2000,
		"interests":  []string{"Cultural & Historical", "Food & Culinary"},
	}
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name:  "Env: Postgres connect",
			Focus: "database reachable",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Name: "db", Status: "FAIL", Note: "db not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.db.Ping(ctx); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "Env: Redis connect",
			Focus: "redis reachable",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: "FAIL", Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "Migration: apply (optional)",
			Focus: "optionally apply migration SQL",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.ApplyMigration {
					return Result{Status: "SKIP", Note: "apply-migration=false"}
				}
				if r.db == nil {
					return Result{Status: "FAIL", Note: "db not configured"}
				}
				sql, err := os.ReadFile(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				stmts := splitSQL(string(sql))
				for _, s := range stmts {
					if _, err := r.db.Exec(ctx, s); err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "Migration: tables exist",
			Focus: "tables from migrations/0001_init.sql present",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "FAIL", Note: "db not configured"}
				}
				tables, err := extractTables(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				for _, t := range tables {
					var exists bool
					err := r.db.QueryRow(ctx,
						"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
						t,
					).Scan(&exists)
					if err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
					if !exists {
						return Result{Status: "FAIL", Note: "missing table: " + t}
					}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "API: server reachable",
			Focus: "health endpoint responds",
			Run: func(ctx context.Context, r *Runner) Result {
				start := time.Now()
				resp, err := r.httpc.Get(base + "/health")
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				_ = resp.Body.Close()
				return Result{Status: "PASS", Latency: time.Since(start), Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			},
		},

		// Catalog
		httpCaseMethod("Catalog: list destinations", http.MethodGet, base+"/api/destinations", nil, []int{200}, []int{501, 404}),
		httpCaseMethod("Catalog: filter by cost level", http.MethodGet, base+"/api/destinations?max_cost_level=2", nil, []int{200}, []int{501, 404}),
		httpCaseMethod("Catalog: unknown destination -> 404", http.MethodGet, base+"/api/destinations/9999", nil, []int{404}, []int{501}),
		httpCaseMethod("Catalog: destination activities", http.MethodGet, base+"/api/destinations/1/activities", nil, []int{200}, []int{501, 404}),

		// Recommendations
		httpCase("Recommend: rank destinations (valid)", base+"/api/recommendations/destinations", benchPreferences(), []int{200}, []int{501, 404}),
		httpCase("Recommend: rank destinations (missing fields -> 400)", base+"/api/recommendations/destinations", map[string]any{}, []int{400}, []int{501, 404}),
		httpCase("Recommend: optimize dates (valid)", base+"/api/recommendations/dates", map[string]any{
			"destination":   "Paris, France",
			"window_start":  "2026-08-20",
			"window_end":    "2026-09-20",
			"duration_days": 7,
		}, []int{200}, []int{501, 404}),
		httpCase("Recommend: optimize dates (unknown destination -> 400)", base+"/api/recommendations/dates", map[string]any{
			"destination":   "Atlantis",
			"window_start":  "2026-08-20",
			"window_end":    "2026-09-20",
			"duration_days": 7,
		}, []int{400}, []int{501, 404}),

		// Itinerary lifecycle
		httpCase("Itinerary: create (invalid dates -> 400)", base+"/api/itineraries", map[string]any{
			"user_id": "bench1",
			"preferences": map[string]any{
				"origin":     "New York, USA",
				"start_date": "2026-09-14",
				"end_date":   "2026-09-07",
				"budget":     2000,
				"interests":  []string{"Sightseeing"},
			},
		}, []int{400}, []int{501, 404}),
		{
			Name:  "Itinerary: draft -> confirm -> complete",
			Focus: "lifecycle transitions",
			Run: func(ctx context.Context, r *Runner) Result {
				return itineraryFlow(ctx, r, base, []string{"confirm", "complete"})
			},
		},
		{
			Name:  "Itinerary: draft -> cancel, then confirm -> 409",
			Focus: "terminal states reject transitions",
			Run: func(ctx context.Context, r *Runner) Result {
				res := itineraryFlow(ctx, r, base, []string{"cancel"})
				if res.Status != "PASS" {
					return res
				}
				// The cancelled id is in the note; confirming it must conflict.
				code, err := r.postAction(ctx, base, strings.TrimPrefix(res.Note, "id="), "confirm")
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if code != 409 {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status=%d", code)}
				}
				return Result{Status: "PASS"}
			},
		},
		manualCase("Itinerary: draft expiry sweep", "shorten TB_PLANNER_DRAFT_TTL_HOURS and watch the sweeper"),

		// Packing
		httpCase("Packing: suggest (valid)", base+"/api/packing", map[string]any{
			"destination": "Bali, Indonesia",
			"start_date":  "2026-09-07",
			"end_date":    "2026-09-17",
			"activities":  []string{"Outdoor & Adventure"},
		}, []int{200}, []int{501, 404}),
		httpCase("Packing: suggest (empty -> 400)", base+"/api/packing", map[string]any{}, []int{400}, []int{501, 404}),

		// AI chat (pending without a Gemini key; 429 once the quota drains)
		httpCase("AI: chat", base+"/api/ai/chat", map[string]any{
			"uid":     "bench1",
			"message": "Where should I go in September on a $2000 budget?",
		}, []int{200}, []int{429, 500, 501, 404}),
		manualCase("AI: monthly token reset", "needs a stale last_reset_month row in ai_usage"),

		// Data consistency
		manualCase("Consistency: itineraries/status/events agree", "query DB to compare status and event rows"),
		manualCase("Consistency: status_version increments", "query DB after each transition"),

		// Concurrency
		{
			Name:  "Concurrency: multi confirm same draft",
			Focus: "only one confirm wins",
			Run: func(ctx context.Context, r *Runner) Result {
				return concurrentConfirm(ctx, r, base)
			},
		},
		manualCase("Concurrency: cancel vs confirm", "send cancel/confirm simultaneously, first writer wins"),

		// Error handling
		manualCase("Error: DB down -> 500", "stop Postgres and watch itinerary endpoints"),
		manualCase("Error: Redis down -> chat unlimited", "stop Redis, limiter must fail open"),

		// Performance
		{
			Name:  "Perf: destination ranking throughput",
			Focus: "recommendation requests per second",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/api/recommendations/destinations", benchPreferences())
			},
		},
		{
			Name:  "Perf: packing suggestion throughput",
			Focus: "packing requests per second",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/api/packing", map[string]any{
					"climate":    "tropical",
					"start_date": "2026-09-07",
					"end_date":   "2026-09-17",
				})
			},
		},
	}
}

func httpCase(name, url string, body any, okStatuses, pendingStatuses []int) TestCase {
	return httpCaseMethod(name, http.MethodPost, url, body, okStatuses, pendingStatuses)
}

func httpCaseMethod(name, method, url string, body any, okStatuses, pendingStatuses []int) TestCase {
	return TestCase{
		Name:  name,
		Focus: "HTTP API",
		Run: func(ctx context.Context, r *Runner) Result {
			var reader io.Reader
			if body != nil {
				b, _ := json.Marshal(body)
				reader = strings.NewReader(string(b))
			}
			req, _ := http.NewRequestWithContext(ctx, method, url, reader)
			req.Header.Set("Content-Type", "application/json")
			start := time.Now()
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			latency := time.Since(start)

			if contains(okStatuses, resp.StatusCode) {
				return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			if contains(pendingStatuses, resp.StatusCode) {
				return Result{Status: "PENDING", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
		},
	}
}

func manualCase(name, note string) TestCase {
	return TestCase{
		Name:  name,
		Focus: "Manual",
		Run: func(ctx context.Context, r *Runner) Result {
			return Result{Status: "SKIP", Note: note}
		},
	}
}

// createDraft posts a fresh itinerary and returns its id.
func (r *Runner) createDraft(ctx context.Context, base string) (string, int, error) {
	body := map[string]any{
		"user_id":     "bench1",
		"preferences": benchPreferences(),
	}
	b, _ := json.Marshal(body)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/itineraries", strings.NewReader(string(b)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.httpc.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 201 {
		io.Copy(io.Discard, resp.Body)
		return "", resp.StatusCode, nil
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", resp.StatusCode, err
	}
	return out.ID, resp.StatusCode, nil
}

func (r *Runner) postAction(ctx context.Context, base, id, action string) (int, error) {
	body := `{"user_id":"bench1"}`
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/itineraries/"+id+"/"+action, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return resp.StatusCode, nil
}

func itineraryFlow(ctx context.Context, r *Runner, base string, actions []string) Result {
	id, code, err := r.createDraft(ctx, base)
	if err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	if code == 501 || code == 404 {
		return Result{Status: "PENDING", Note: fmt.Sprintf("status=%d", code)}
	}
	if id == "" {
		return Result{Status: "FAIL", Note: fmt.Sprintf("create status=%d", code)}
	}
	for _, action := range actions {
		code, err := r.postAction(ctx, base, id, action)
		if err != nil {
			return Result{Status: "FAIL", Note: err.Error()}
		}
		if code != 200 {
			return Result{Status: "FAIL", Note: fmt.Sprintf("%s status=%d", action, code)}
		}
	}
	return Result{Status: "PASS", Note: "id=" + id}
}

func concurrentConfirm(ctx context.Context, r *Runner, base string) Result {
	id, code, err := r.createDraft(ctx, base)
	if err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	if code == 501 || code == 404 {
		return Result{Status: "PENDING", Note: "not implemented"}
	}
	if id == "" {
		return Result{Status: "FAIL", Note: fmt.Sprintf("create status=%d", code)}
	}

	wg := sync.WaitGroup{}
	succ := 0
	mu := sync.Mutex{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := r.postAction(ctx, base, id, "confirm")
			if err != nil {
				return
			}
			mu.Lock()
			if code >= 200 && code < 300 {
				succ++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if succ == 1 {
		return Result{Status: "PASS", Note: fmt.Sprintf("success=%d", succ)}
	}
	return Result{Status: "FAIL", Note: fmt.Sprintf("success=%d", succ)}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	b, _ := json.Marshal(payload)
	end := time.Now().Add(r.cfg.Duration)
	var count int64
	var errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) {
				req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(b)))
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					mu.Lock()
					errCount++
					mu.Unlock()
					continue
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				mu.Lock()
				count++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: "FAIL", Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: "PASS", Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}

func contains(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}

func extractTables(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	re := regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)
	matches := re.FindAllStringSubmatch(string(b), -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables, nil
}

func splitSQL(sql string) []string {
	lines := strings.Split(sql, "\n")
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		l := strings.TrimSpace(line)
		if strings.HasPrefix(l, "--") || l == "" {
			continue
		}
		filtered = append(filtered, line)
	}
	cleaned := strings.Join(filtered, "\n")
	parts := strings.Split(cleaned, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
