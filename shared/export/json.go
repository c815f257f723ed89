package export

import (
	"encoding/json"
	"fmt"
	"os"

	"outreach-stack/internal/models"
)

// WriteJSON writes the full influencer set as a pretty-printed backup.
func WriteJSON(influencers []*models.Influencer, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create json file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(influencers); err != nil {
		return fmt.Errorf("failed to encode influencers: %w", err)
	}
	return nil
}
