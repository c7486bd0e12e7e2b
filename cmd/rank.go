package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spigell/profile-ranker/internal/logger"
	"github.com/spigell/profile-ranker/internal/profile"
	"github.com/spigell/profile-ranker/internal/ranking"
	"github.com/spigell/profile-ranker/internal/report"
	"github.com/spigell/profile-ranker/internal/secrets"
	"github.com/spigell/profile-ranker/internal/similarity"
	"github.com/spigell/profile-ranker/internal/similarity/gemini"
	"github.com/spigell/profile-ranker/internal/similarity/lexical"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptDumpRanking      = "Dump ranking to file"
	PromptInspectCandidate = "Inspect a candidate"
	PromptShowReport       = "Show the report again"
	PromptExit             = "Exit"
	PromptBack             = "back"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowReport, PromptInspectCandidate, PromptDumpRanking, PromptExit},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidate profiles against the configured job requirements",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().BoolP("auto-aprove", "y", false, "print the report and exit without the interactive prompt")
	rankCmd.Flags().StringP("profiles-file", "p", "", "JSON file with the candidate profiles to rank")

	viper.BindPFlag("profiles-file", rankCmd.Flags().Lookup("profiles-file"))
}

// rank is the main command for the cli.
func rank(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the profile-ranker", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Job == nil || strings.TrimSpace(config.Job.Description) == "" {
		logger.Fatal("a job description is required under the job section to score candidates")
	}

	profilesFile := strings.TrimSpace(config.ProfilesFile)
	if flagFile := strings.TrimSpace(viper.GetString("profiles-file")); flagFile != "" {
		profilesFile = flagFile
	}
	if profilesFile == "" {
		logger.Fatal("profiles file is required",
			zap.String("hint", "set profiles-file in the configuration file or pass --profiles-file"),
		)
	}

	profiles, err := profile.FromFile(profilesFile)
	if err != nil {
		logger.Fatal("loading candidate profiles", zap.Error(err), zap.String("file", profilesFile))
	}

	logger.Info("loaded candidate profiles",
		zap.Int("count", len(profiles)),
		zap.String("file", profilesFile),
	)

	if len(profiles) == 0 {
		logger.Info("exiting", zap.String("reason", "no profiles to rank"))
		return
	}

	scorer, err := newScorer(ctx, config.Similarity, logger)
	if err != nil {
		logger.Fatal("building the similarity scorer", zap.Error(err))
	}

	result, err := ranking.Rank(ctx, profiles, *config.Job, scorer, logger)
	if err != nil {
		logger.Fatal("ranking failed", zap.Error(err))
	}

	fmt.Print(report.Render(result))

	if cmd.Flag("auto-aprove").Value.String() == "true" {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, result, profiles); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, result *ranking.Ranking, profiles []profile.RawProfile) error {
	switch action {
	case PromptShowReport:
		fmt.Print(report.Render(result))
		return nil
	case PromptInspectCandidate:
		return inspectCandidate(result, profiles)
	case PromptDumpRanking:
		filename, err := result.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump ranking to file: %w", err)
		}
		logger.Info("dumping ranking to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func inspectCandidate(result *ranking.Ranking, profiles []profile.RawProfile) error {
	items := make([]string, 0, result.Len())
	for _, c := range result.Items {
		items = append(items, fmt.Sprintf("%s / total %.2f", c.Name, c.TotalScore))
	}

	candidatePrompt := promptui.Select{
		Label: "Choose a candidate and press ENTER",
		Items: append(items, PromptBack),
	}

	_, selected, err := candidatePrompt.Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	name := strings.SplitN(selected, " / ", 2)[0]
	for _, p := range profiles {
		n := profile.Normalize(p)
		if n.Name != name {
			continue
		}

		scored := result.FindByName(name)
		if scored == nil {
			return fmt.Errorf("there is no such candidate %s", name)
		}

		fmt.Printf("Name: %s\n", n.Name)
		fmt.Printf("Headline: %s\n", n.Headline)
		fmt.Printf("Summary: %s\n", n.Summary)
		fmt.Printf("Skills: %s\n", strings.Join(n.Skills, ", "))
		for _, line := range n.Experience {
			fmt.Printf("Experience: %s\n", line)
		}
		for _, line := range n.Education {
			fmt.Printf("Education: %s\n", line)
		}
		fmt.Printf("Skill Match: %.2f%%\n", scored.SkillMatch)
		fmt.Printf("Semantic Match: %.2f\n", scored.SemanticMatch)
		fmt.Printf("Total Score: %.2f\n", scored.TotalScore)
		return nil
	}

	return fmt.Errorf("there is no such candidate %s", name)
}

func newScorer(ctx context.Context, config *SimilarityConfig, logger *zap.Logger) (similarity.Scorer, error) {
	provider := ""
	if config != nil {
		provider = strings.TrimSpace(strings.ToLower(config.Provider))
	}

	switch provider {
	case "", "lexical":
		logger.Debug("using the lexical similarity scorer")
		return lexical.New(), nil
	case "gemini":
		if config.Gemini == nil {
			return nil, fmt.Errorf("gemini configuration is required when the gemini provider is selected")
		}

		keyFile := strings.TrimSpace(config.Gemini.APIKeyFile)
		if keyFile == "" {
			keyFile = strings.TrimSpace(viper.GetString("gemini-api-key-file"))
		}

		apiKey, err := secrets.Load("gemini api key", keyFile, "")
		if err != nil {
			return nil, fmt.Errorf("%w (set similarity.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
		}

		generator, err := gemini.NewGenerator(ctx, apiKey, config.Gemini.Model)
		if err != nil {
			return nil, err
		}

		scorerLogger := logger.With(
			zap.String("provider", "gemini"),
			zap.String("model", generator.Model()),
			zap.Int("max_retries", config.Gemini.MaxRetries),
		)

		return gemini.NewScorer(generator, scorerLogger, config.Gemini.MaxRetries, config.Gemini.MaxLogLength), nil
	default:
		return nil, fmt.Errorf("unsupported similarity provider: %s", config.Provider)
	}
}
