package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jimezsa/jobportal/internal/models"
)

// WriteRecommendations prints recommended jobs as JSON or one line per job.
func WriteRecommendations(w io.Writer, recs []models.Recommendation, format Format) error {
	if format == FormatJSON {
		if recs == nil {
			recs = []models.Recommendation{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	for _, rec := range recs {
		line := safe(rec.Title)
		if rec.Company != "" {
			line += " (" + safe(rec.Company) + ")"
		}
		if rec.MatchScore > 0 {
			line += " match " + strconv.FormatFloat(rec.MatchScore, 'f', -1, 64)
		}
		if len(rec.Skills) > 0 {
			line += " [" + safe(strings.Join(rec.Skills, ", ")) + "]"
		}
		if rec.URL != "" {
			line += " " + safe(rec.URL)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
