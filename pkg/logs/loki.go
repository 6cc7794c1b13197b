package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/evanshaw/cadence_backend/config"
)

// lokiPusher is an io.Writer that forwards each JSON log line to Loki's
// push API. slog's JSON handler does the formatting; we only wrap lines
// in the stream envelope Loki expects.
type lokiPusher struct {
	endpoint string
	username string
	password string
	stream   map[string]string
	client   *http.Client
}

type lokiPush struct {
	Streams []lokiStream `json:"streams"`
}

type lokiStream struct {
	Stream map[string]string `json:"stream"`
	Values [][2]string       `json:"values"`
}

func newLokiHandler(cfg *config.Config, level slog.Level) slog.Handler {
	lp := &lokiPusher{
		endpoint: cfg.Logging.Output.Loki.Endpoint + "/loki/api/v1/push",
		username: cfg.Logging.Output.Loki.Username,
		password: cfg.Logging.Output.Loki.Password,
		stream: map[string]string{
			"service": cfg.Observability.ServiceName,
			"env":     cfg.Server.Environment,
		},
		client: &http.Client{Timeout: 3 * time.Second},
	}
	return slog.NewJSONHandler(lp, &slog.HandlerOptions{Level: level})
}

func (lp *lokiPusher) Write(p []byte) (int, error) {
	// Loki wants [unix-nanos-as-string, line] pairs.
	entry := [2]string{
		strconv.FormatInt(time.Now().UnixNano(), 10),
		string(bytes.TrimRight(p, "\n")),
	}

	body, err := json.Marshal(lokiPush{
		Streams: []lokiStream{{Stream: lp.stream, Values: [][2]string{entry}}},
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, lp.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if lp.username != "" {
		req.SetBasicAuth(lp.username, lp.password)
	}

	resp, err := lp.client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return len(p), nil
}
