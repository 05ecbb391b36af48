package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/parsing"
)

var vocabularyCmd = &cobra.Command{
	Use:   "vocabulary [term...]",
	Short: "List the skill vocabulary or resolve terms to canonical skills",
	Long: `Without arguments, list every known skill with its aliases. With arguments,
print the canonical name of each term and whether it is a known skill.`,
	RunE: runVocabulary,
}

func init() {
	rootCmd.AddCommand(vocabularyCmd)
}

func runVocabulary(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, skill := range eng.vocab.Skills() {
			line := skill
			if aliases := eng.vocab.Aliases(skill); len(aliases) > 0 {
				line += " (" + strings.Join(aliases, ", ") + ")"
			}
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
		return nil
	}

	for _, term := range args {
		term = parsing.Fold(term)
		canonical := parsing.NormalizeSkillName(term, eng.vocab)
		status := "unknown"
		if eng.vocab.IsSkill(canonical) {
			status = "skill"
		}
		if _, err := fmt.Fprintf(out, "%s -> %s (%s)\n", term, canonical, status); err != nil {
			return err
		}
	}
	return nil
}
