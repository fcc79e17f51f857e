// Command seed replaces the question store with a question set.
//
//	seed                          # load the built-in question set
//	seed --file questions.json    # load a JSON or YAML file
//	seed --generate-category Science --generate-count 10 --difficulty Hard
//	seed --generate-count 5 --out extra.yaml   # draft only, store untouched
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lshigami/Quizzy/config"
	"github.com/lshigami/Quizzy/database"
	"github.com/lshigami/Quizzy/internal/dto"
	"github.com/lshigami/Quizzy/internal/logger"
	"github.com/lshigami/Quizzy/internal/model"
	"github.com/lshigami/Quizzy/internal/service"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	logger.Init()

	var (
		file        = flag.StringP("file", "f", "", "JSON or YAML question file (default: built-in set)")
		genCategory = flag.String("generate-category", "", "category for generated questions")
		genCount    = flag.Int("generate-count", 0, "number of questions to generate with Gemini")
		difficulty  = flag.String("difficulty", "Medium", "difficulty for generated questions")
		out         = flag.StringP("out", "o", "", "write the resulting set to this YAML file instead of the store")
		ifEmpty     = flag.Bool("if-empty", false, "only seed when the store has no questions")
	)
	flag.Parse()

	if err := run(*file, *genCategory, *genCount, *difficulty, *out, *ifEmpty); err != nil {
		log.Error().Err(err).Msg("Seeding failed")
		os.Exit(1)
	}
}

func run(file, genCategory string, genCount int, difficulty, out string, ifEmpty bool) error {
	// --out only drafts a file, so the store settings may be absent.
	var cfg *config.Config
	var err error
	if out != "" {
		cfg = config.Load()
	} else if cfg, err = config.NewConfig(); err != nil {
		return err
	}
	logger.Configure(cfg.AppEnv, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var seedSvc service.SeedService
	var store *database.Store
	if out == "" {
		store, err = database.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := store.Close(context.Background()); cerr != nil {
				log.Warn().Err(cerr).Msg("Closing question store failed")
			}
		}()
		seedSvc = service.NewSeedService(store.Questions)

		if ifEmpty {
			count, err := store.Questions.Count(ctx)
			if err != nil {
				return err
			}
			if count > 0 {
				log.Info().Int64("questions", count).Msg("Store already populated, nothing to do")
				return nil
			}
		}
	} else {
		seedSvc = service.NewSeedService(nil)
	}

	var items []dto.QuestionImportDTO
	if file != "" {
		items, err = seedSvc.LoadFile(file)
	} else if genCount == 0 {
		items, err = seedSvc.DefaultQuestions()
	}
	if err != nil {
		return err
	}

	generated := 0
	if genCount > 0 {
		level, err := model.ParseDifficulty(difficulty)
		if err != nil {
			return err
		}
		generator, err := service.NewQuestionGeneratorService(ctx, cfg)
		if err != nil {
			return err
		}
		extra, err := generator.GenerateQuestions(ctx, service.GenerateRequest{
			Category:   genCategory,
			Difficulty: level,
			Count:      genCount,
		})
		if err != nil {
			return err
		}
		generated = len(extra)
		items = append(items, extra...)
	}

	if out != "" {
		_, warnings, err := service.BuildQuestions(items)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			log.Warn().Msg(w)
		}
		raw, err := service.EncodeQuestionsYAML(items)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		log.Info().Str("file", out).Int("questions", len(items)).Int("generated", generated).Msg("Question set written")
		return nil
	}

	summary, err := seedSvc.Reseed(ctx, items)
	if err != nil {
		return err
	}
	summary.Generated = generated
	fmt.Printf("deleted %d, inserted %d (%d generated), %d warnings\n",
		summary.Deleted, summary.Inserted, summary.Generated, len(summary.Warnings))
	return nil
}
