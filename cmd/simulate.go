/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/journey/internal/app"
	"github.com/eslsoft/journey/internal/entity"
	"github.com/eslsoft/journey/internal/repository"
	"github.com/eslsoft/journey/internal/usecase/journey"
)

const (
	simulateCountKey    = "simulate.count"
	simulateSeedKey     = "simulate.seed"
	simulateCorpusKey   = "simulate.corpus"
	simulateNoAudioKey  = "simulate.no_audio"
	simulateAccuracyKey = "simulate.accuracy"
)

// simulateCmd drives a scheduler session against the real catalog and stats
// store, answering each drill with a configurable accuracy. Useful for
// eyeballing the activity mix a learner would actually get.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scheduler session and print the activity mix",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize application: %w", err)
		}
		defer cleanup()
		defer container.Stats.Flush()

		count := viper.GetInt(simulateCountKey)
		seed := viper.GetUint64(simulateSeedKey)
		corpus := viper.GetString(simulateCorpusKey)
		audioEnabled := !viper.GetBool(simulateNoAudioKey)
		accuracy := viper.GetInt(simulateAccuracyKey)
		if accuracy < 0 || accuracy > 100 {
			return fmt.Errorf("accuracy must be within [0, 100], got %d", accuracy)
		}

		pool, _, err := container.Catalog.ListTerms(ctx, &repository.ListTermQuery{
			Pagination: repository.Pagination{PageNo: 1, PageSize: 10000},
			Corpus:     corpus,
		})
		if err != nil {
			return fmt.Errorf("load term pool: %w", err)
		}
		if len(pool) == 0 {
			return fmt.Errorf("term pool is empty; run db-init with --wordlists first")
		}
		if err := container.Stats.Load(ctx, pool); err != nil {
			return fmt.Errorf("warm stats view: %w", err)
		}

		rng := journey.NewClockRNG()
		if seed != 0 {
			rng = journey.NewRNG(seed)
		}
		scheduler := journey.NewScheduler(container.Stats,
			journey.WithRNG(rng),
			journey.WithLogger(container.Logger),
		)

		types := make(map[entity.ActivityType]int)
		modalities := make(map[entity.Modality]int)
		for i := 0; i < count; i++ {
			activity := scheduler.SelectNextActivity(pool, audioEnabled)
			types[activity.Type]++
			if activity.IsBreak() || activity.Term == nil {
				continue
			}
			if activity.Modality != entity.ModalityUnspecified {
				modalities[activity.Modality]++
			}

			correct := rng.IntN(100) < accuracy
			expose := activity.Type == entity.ActivityNewWord
			modality := activity.Modality
			if modality == entity.ModalityUnspecified {
				modality = entity.ModalityMultipleChoice
			}
			if err := container.Stats.RecordOutcome(ctx, *activity.Term, modality, correct, expose); err != nil {
				return fmt.Errorf("record outcome: %w", err)
			}
			scheduler.InvalidateWord(*activity.Term)
		}

		cmd.Printf("simulated %d activities over %d terms (audio=%v, accuracy=%d%%)\n",
			count, len(pool), audioEnabled, accuracy)
		printCounts(cmd, "activity types", types)
		printCounts(cmd, "drill modalities", modalities)
		return nil
	},
}

func printCounts[K ~string](cmd *cobra.Command, title string, counts map[K]int) {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, string(key))
	}
	sort.Strings(keys)

	cmd.Printf("%s:\n", title)
	for _, key := range keys {
		cmd.Printf("  %-20s %d\n", key, counts[K(key)])
	}
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntP("count", "n", 200, "number of activities to schedule")
	simulateCmd.Flags().Uint64("seed", 0, "random seed, 0 for clock-seeded")
	simulateCmd.Flags().String("corpus", "", "restrict the pool to one corpus")
	simulateCmd.Flags().Bool("no-audio", false, "disable listening drills")
	simulateCmd.Flags().Int("accuracy", 85, "simulated learner accuracy percentage")

	bindFlagToViper(simulateCountKey, simulateCmd.Flags().Lookup("count"))
	bindFlagToViper(simulateSeedKey, simulateCmd.Flags().Lookup("seed"))
	bindFlagToViper(simulateCorpusKey, simulateCmd.Flags().Lookup("corpus"))
	bindFlagToViper(simulateNoAudioKey, simulateCmd.Flags().Lookup("no-audio"))
	bindFlagToViper(simulateAccuracyKey, simulateCmd.Flags().Lookup("accuracy"))
}
