// Package all links every model variant into the binary. Import it for side
// effects only.
package all

import (
	_ "modelhub/internal/models/composite"
	_ "modelhub/internal/models/dumb"
	_ "modelhub/internal/models/echo"
	_ "modelhub/internal/models/fault"
	_ "modelhub/internal/models/genai"
	_ "modelhub/internal/models/pysummary"
)
