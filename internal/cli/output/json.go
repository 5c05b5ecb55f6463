package output

import (
	"encoding/json"
	"io"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
)

// JSONFormatter formats data as JSON.
type JSONFormatter struct{}

// Format formats data as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	if res, ok := data.(domain.Resolution); ok {
		b, err := MarshalResolutionJSON(res)
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
