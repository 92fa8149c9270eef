// storyweb serves a small web form that generates children's stories and
// renders them to downloadable PDFs.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/unidoc/unipdf/v3/common/license"

	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/api"
	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/config"
	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/openai"
	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/story"
	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/storydb"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if key := os.Getenv("UNIDOC_LICENSE_API_KEY"); key != "" {
		if err := license.SetMeteredKey(key); err != nil {
			log.Printf("[Main] unidoc license: %v", err)
		}
	}

	store, err := storydb.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}

	client := openai.New(os.Getenv("OPENAI_API_KEY"))
	gen := story.NewGenerator(client, cfg.Model)

	r := api.SetupRouter(api.Deps{
		Generator: gen,
		Store:     store,
		WebDir:    cfg.WebDir,
	})

	fmt.Printf("Starting server on %s\n", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
