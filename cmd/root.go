package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/neperme-a11y/brand-reputation-monitor/config"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/httputil"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/shop"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/stealth"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "brandmon",
	Short: "Brand reputation monitor - snapshot CLI & MCP server",
	Long:  "Collects products, testimonials, and customer reviews from the target site and normalizes them into one structured snapshot.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("base-url", "", "Target site base URL")
	rootCmd.PersistentFlags().String("delay-profile", "", "Delay profile: cautious, normal, aggressive")
	rootCmd.PersistentFlags().Bool("respect-robots", true, "Respect robots.txt rules")
	rootCmd.PersistentFlags().Int("max-pages", 0, "Hard upper bound per paginated loop")
	rootCmd.PersistentFlags().Int("year", 0, "Target review year")
	rootCmd.PersistentFlags().String("proxy-url", "", "Static egress proxy URL")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("base-url"); v != "" {
		cfg.BaseURL = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("delay-profile"); v != "" {
		cfg.DelayProfile = v
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("respect-robots"); !v {
		cfg.RespectRobots = false
	}
	if v, _ := rootCmd.PersistentFlags().GetInt("max-pages"); v > 0 {
		cfg.MaxPages = v
	}
	if v, _ := rootCmd.PersistentFlags().GetInt("year"); v > 0 {
		cfg.TargetYear = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("proxy-url"); v != "" {
		cfg.ProxyURL = v
	}
}

// buildHTTPClient creates the politeness-wrapped HTTP client from config.
func buildHTTPClient() *http.Client {
	baseTransport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
	}

	robotsClient := &http.Client{Timeout: 10 * time.Second}

	transport := &stealth.PolitenessTransport{
		Base:        baseTransport,
		Robots:      stealth.NewRobotsChecker(robotsClient, cfg.RespectRobots),
		Fingerprint: stealth.NewSessionFingerprint(),
		RateLimiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
	}
	if p := stealth.NewStaticProvider(cfg.ProxyURL); p != nil {
		transport.Proxy = p
	}

	return httputil.NewHTTPClient(transport, cfg.RequestTimeout)
}

// buildScraper wires the site client and collectors from config.
func buildScraper() (*shop.Scraper, error) {
	client, err := shop.NewClient(cfg.BaseURL, buildHTTPClient())
	if err != nil {
		return nil, err
	}

	opts := shop.Options{
		Categories:        cfg.Categories,
		MaxPages:          cfg.MaxPages,
		MaxReviewProducts: cfg.MaxReviewProducts,
		TargetYear:        cfg.TargetYear,
		SecretToken:       cfg.SecretToken,
		CSRFToken:         cfg.CSRFToken,
	}
	delay := stealth.NewHumanDelay(stealth.DelayProfile(cfg.DelayProfile))
	return shop.NewScraper(client, opts, delay), nil
}
