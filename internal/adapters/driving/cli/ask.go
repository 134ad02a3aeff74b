package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ilmify/ilmify-cli/internal/core/domain"
)

var askJSON bool

// noAnswerMessage is shown when nothing in the resources matches.
// Kept friendly: the audience is students, not operators.
const noAnswerMessage = "I could not find an answer in the downloaded resources. " +
	"Try different words, or ask your teacher to add more materials."

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question and get an answer from indexed resources",
	Long: `Ranks indexed passages against the question and assembles an
extractive answer with cited sources. Builds the index first if needed.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := ensureServices(ctx); err != nil {
		return err
	}

	answer, err := askService.Ask(ctx, args[0])
	if errors.Is(err, domain.ErrNoMatch) || errors.Is(err, domain.ErrEmptyQuery) {
		cmd.Println(noAnswerMessage)
		return nil
	}
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(answer.Text)
	cmd.Println()
	cmd.Printf("Source: %s (%s)\n", strings.Join(answer.Sources, ", "), answer.Category)
	return nil
}
