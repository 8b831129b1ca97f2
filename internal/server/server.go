package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pramana/truthlens/internal/audit"
	"github.com/pramana/truthlens/internal/config"
	"github.com/pramana/truthlens/internal/core"
	"github.com/pramana/truthlens/internal/core/claim"
	"github.com/pramana/truthlens/internal/core/evidence"
	"github.com/pramana/truthlens/internal/core/model"
	"github.com/pramana/truthlens/internal/core/verdict"
	"github.com/pramana/truthlens/internal/llm"
	"github.com/pramana/truthlens/internal/secrets"
	"github.com/pramana/truthlens/internal/storage"
)

type Server struct {
	Cfg      *config.Config
	Pipeline *core.Pipeline
	Store    storage.BlobStore
	Audit    audit.Sink
	APIKey   string
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using built-in defaults", cfgPath, err)
		cfg = &config.Config{}
		cfg.ApplyDefaults()
	}

	sec := secrets.EnvSource{}

	// Env vars win over the config file.
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = sec.Get("llm-api-key")
	}
	if cfg.FactCheck.APIKey == "" {
		cfg.FactCheck.APIKey = sec.Get("fact-check-api-key")
	}
	if cfg.News.APIKey == "" {
		cfg.News.APIKey = sec.Get("news-api-key")
	}
	if v := os.Getenv("NEWS_BASE_URL"); v != "" {
		cfg.News.BaseURL = v
	}
	if v := os.Getenv("STORAGE_BUCKET"); v != "" {
		cfg.Storage.Bucket = v
	}

	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "gemini"
		cfg.LLM.Model = "gemini-1.5-flash-002"
	}

	ctx := context.Background()
	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	var store storage.BlobStore
	if cfg.Storage.Bucket != "" {
		gcs, err := storage.NewGCSStore(ctx, cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			log.Printf("Warning: blob store disabled: %v", err)
		} else {
			store = gcs
		}
	}

	var sink audit.Sink
	if cfg.Audit.URL != "" {
		sink = audit.NewInfluxSink(cfg.Audit.URL, cfg.Audit.Token, cfg.Audit.Org, cfg.Audit.Bucket)
	}

	return &Server{
		Cfg:      cfg,
		Pipeline: buildPipeline(cfg, llmClient),
		Store:    store,
		Audit:    sink,
		APIKey:   sec.Get("truthlens-api-key"),
	}
}

func buildPipeline(cfg *config.Config, llmClient llm.Client) *core.Pipeline {
	resolver := claim.NewResolver(
		claim.NewExtractor(llmClient, cfg.Prompts.OCR),
		claim.NewRefiner(llmClient, cfg.Prompts.Refine),
		claim.NewCaptioner(llmClient, cfg.Prompts.Caption),
	)
	aggregator := evidence.NewAggregator(
		evidence.NewFactCheckClient(cfg.FactCheck.BaseURL, cfg.FactCheck.APIKey),
		evidence.NewNewsClient(cfg.News.BaseURL, cfg.News.APIKey),
		evidence.NewReranker(llmClient),
		time.Duration(cfg.Timeouts.EvidenceSeconds)*time.Second,
	)
	reasoner := verdict.NewReasoner(
		llmClient,
		cfg.Prompts.Verify,
		time.Duration(cfg.Timeouts.ReasonerSeconds)*time.Second,
	)
	return core.NewPipeline(resolver, aggregator, reasoner)
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.Healthz)
	r.POST("/v1/verify", s.requireAPIKey(), s.Verify)
	r.POST("/v1/verify-test", s.VerifyTest)

	return r
}

func (s *Server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) requireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if s.APIKey == "" || token != s.APIKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}
		c.Next()
	}
}

// Verify is the authenticated multipart endpoint: text and/or image in,
// VerdictResult out, with persistence and audit logging after the verdict.
func (s *Server) Verify(c *gin.Context) {
	start := time.Now()
	requestID := uuid.New().String()

	req := model.Request{
		Text:     c.PostForm("text"),
		Mode:     c.DefaultPostForm("mode", "fast"),
		Language: c.DefaultPostForm("language", "en"),
	}
	if file, header, err := c.Request.FormFile("image"); err == nil {
		data, rerr := io.ReadAll(file)
		file.Close()
		if rerr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
			return
		}
		req.Image = data
		req.ImageMIME = header.Header.Get("Content-Type")
		if req.ImageMIME == "" {
			req.ImageMIME = "image/jpeg"
		}
	}

	outcome, err := s.Pipeline.Verify(c.Request.Context(), req)
	if err != nil {
		status, msg := statusForError(err)
		slog.Error("verify failed", "request_id", requestID, "status", status, "error", err)
		c.JSON(status, gin.H{"request_id": requestID, "error": msg})
		return
	}

	result := outcome.Result
	result.RequestID = requestID
	result.Metrics = &model.Metrics{
		LatencyMS: float64(time.Since(start).Milliseconds()),
		CostUSD:   estimateCost(s.Cfg.Cost, result.Mode, len(req.Text), req.HasImage()),
	}

	s.persistAndAudit(c.Request.Context(), requestID, req, outcome, result)

	c.JSON(http.StatusOK, result)
}

// VerifyTest is the unauthenticated JSON variant used by smoke tests and
// the frontend during development. Same pipeline, no persistence.
func (s *Server) VerifyTest(c *gin.Context) {
	start := time.Now()
	requestID := uuid.New().String()

	var body struct {
		Text     string `json:"text"`
		Language string `json:"language"`
		Mode     string `json:"mode"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if body.Language == "" {
		body.Language = "auto"
	}
	if body.Mode == "" {
		body.Mode = "fast"
	}

	outcome, err := s.Pipeline.Verify(c.Request.Context(), model.Request{
		Text:     body.Text,
		Language: body.Language,
		Mode:     body.Mode,
	})
	if err != nil {
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"request_id": requestID, "error": msg})
		return
	}

	result := outcome.Result
	result.RequestID = requestID
	result.Metrics = &model.Metrics{
		LatencyMS: float64(time.Since(start).Milliseconds()),
		CostUSD:   estimateCost(s.Cfg.Cost, result.Mode, len(body.Text), false),
	}
	c.JSON(http.StatusOK, result)
}

// persistAndAudit runs the two post-verdict side effects concurrently.
// Neither outcome affects the response; failures are only logged.
func (s *Server) persistAndAudit(ctx context.Context, requestID string, req model.Request, outcome *core.Outcome, result model.VerdictResult) {
	var wg sync.WaitGroup

	if s.Store != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if req.HasImage() {
				if _, err := s.Store.Put(ctx, "images/"+requestID+".jpg", req.Image, req.ImageMIME); err != nil {
					slog.Error("image persistence failed", "request_id", requestID, "error", err)
				}
			}
			payload, err := json.Marshal(result)
			if err == nil {
				_, err = s.Store.Put(ctx, "responses/"+requestID+".json", payload, "application/json")
			}
			if err != nil {
				slog.Error("result persistence failed", "request_id", requestID, "error", err)
			}
		}()
	}

	if s.Audit != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := audit.Record{
				RequestID:  requestID,
				Text:       audit.TruncateText(outcome.ClaimText),
				Language:   result.Language,
				Mode:       result.Mode,
				Verdict:    result.Verdict,
				Confidence: result.Confidence,
				LatencyMS:  result.Metrics.LatencyMS,
				CostUSD:    result.Metrics.CostUSD,
				UserHash:   audit.AnonymizeUser(outcome.ClaimText),
				Timestamp:  time.Now().UTC(),
			}
			if err := s.Audit.Append(ctx, rec); err != nil {
				slog.Error("audit append failed", "request_id", requestID, "error", err)
			}
		}()
	}

	wg.Wait()
}

func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, claim.ErrNoClaim):
		return http.StatusBadRequest, "No claim text could be derived from the request"
	case errors.Is(err, llm.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType, "The supplied media is not supported by the verification model"
	default:
		return http.StatusInternalServerError, "Verification failed"
	}
}
