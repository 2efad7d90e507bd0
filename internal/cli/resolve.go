package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/minsukang/stagegate/internal/domain"
)

// resolveProjectID resolves user input to a project ID, accepting an exact
// ID, an ID prefix, or a case-insensitive exact name.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}
	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseStageName validates a stage argument.
func parseStageName(input string) (domain.StageName, error) {
	if !domain.ValidStageNames[input] {
		return "", fmt.Errorf("unknown stage %q (expected stage1, stage2 or stage3)", input)
	}
	return domain.StageName(input), nil
}
