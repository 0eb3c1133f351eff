// Package web serves the calculator as a single HTML form.
package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"bedtimecalc/internal/bedtime"
	"bedtimecalc/internal/clock"
)

// Stepper actions accepted by POST /calc.
const (
	stepSleepUp   = "sleep+"
	stepSleepDown = "sleep-"
)

type CupOption struct {
	Value    int
	Label    string
	Selected bool
}

type PageData struct {
	Wake       string
	Sleep      string
	SleepLabel string
	Coffee     int
	Cups       []CupOption

	AtMinSleep bool
	AtMaxSleep bool

	Version string

	Error  string
	Result bedtime.Result

	// Share text: meta description for link previews.
	ShareDescription string
}

// EstimateResponse is the JSON body of GET /estimate.
type EstimateResponse struct {
	Wake                  string  `json:"wake"`
	SleepHours            float64 `json:"sleep_hours"`
	CaffeineCups          int     `json:"caffeine_cups"`
	OK                    bool    `json:"ok"`
	Title                 string  `json:"title"`
	Message               string  `json:"message"`
	Bedtime               string  `json:"bedtime,omitempty"`
	PreviousDay           bool    `json:"previous_day,omitempty"`
	PredictedSleepSeconds float64 `json:"predicted_sleep_seconds,omitempty"`
}

// Server renders the form and runs calculations. Each request gets its own
// session, so handlers share nothing mutable.
type Server struct {
	est      *bedtime.Estimator
	defaults bedtime.Defaults
	version  string
	logger   *zap.Logger
	tpl      *template.Template
}

func New(est *bedtime.Estimator, defaults bedtime.Defaults, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		est:      est,
		defaults: defaults,
		version:  version,
		logger:   logger,
		tpl:      template.Must(template.New("page").Parse(pageHTML)),
	}
}

// Handler returns the routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/calc", s.handleCalc)
	mux.HandleFunc("/estimate", s.handleEstimate)
	return mux
}

// ListenAndServe blocks serving on port.
func (s *Server) ListenAndServe(port int) error {
	s.logger.Info("serving web form", zap.Int("port", port))
	return http.ListenAndServe(fmt.Sprintf(":%d", port), s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	sess, err := s.sessionFromValues(r.URL.Query())
	if err != nil {
		// Fall back to defaults so the page still shows a bedtime.
		sess = bedtime.NewSession(s.est, s.defaults)
		data := s.pageData(sess)
		data.Error = err.Error()
		s.render(w, data)
		return
	}
	data := s.pageData(sess)
	if data.Result.OK {
		data.ShareDescription = fmt.Sprintf("Wake %s after %s with %s: go to bed at %s.",
			sess.Wake().Format(s.est.Style()), sess.SleepLabel(), sess.CaffeineLabel(), data.Result.Message)
	}
	s.render(w, data)
}

func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	sess, err := s.sessionFromValues(r.PostForm)
	if err != nil {
		data := s.pageData(bedtime.NewSession(s.est, s.defaults))
		data.Wake = strings.TrimSpace(r.PostForm.Get("wake"))
		data.Error = err.Error()
		w.WriteHeader(http.StatusBadRequest)
		s.render(w, data)
		return
	}

	switch r.PostForm.Get("step") {
	case stepSleepUp:
		sess.IncrementSleep()
	case stepSleepDown:
		sess.DecrementSleep()
	}

	// Redirect to GET with query params (only non-defaults) so the URL reflects the calculation.
	http.Redirect(w, r, s.calcURL(sess), http.StatusFound)
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromValues(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	res := sess.Result()
	body := EstimateResponse{
		Wake:         sess.Wake().String(),
		SleepHours:   sess.SleepHours(),
		CaffeineCups: sess.CaffeineCups(),
		OK:           res.OK,
		Title:        res.Title,
		Message:      res.Message,
	}
	if res.OK {
		body.Bedtime = res.Bedtime.String()
		body.PreviousDay = res.PreviousDay
		body.PredictedSleepSeconds = res.PredictedSleep.Seconds()
	}
	writeJSON(w, http.StatusOK, body)
}

// sessionFromValues builds a session from wake/sleep/coffee values, using
// the server defaults for anything missing.
func (s *Server) sessionFromValues(v url.Values) (*bedtime.Session, error) {
	d := s.defaults
	if raw := strings.TrimSpace(v.Get("wake")); raw != "" {
		c, err := clock.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("wake time: %w", err)
		}
		d.Wake = c
	}
	if raw := strings.TrimSpace(v.Get("sleep")); raw != "" {
		h, err := parseFloat(raw)
		if err != nil {
			return nil, fmt.Errorf("sleep must be a number of hours between %s and %s",
				bedtime.FormatHours(bedtime.MinSleepHours), bedtime.FormatHours(bedtime.MaxSleepHours))
		}
		d.SleepHours = h
	}
	if raw := strings.TrimSpace(v.Get("coffee")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("coffee must be a whole number of cups between %d and %d",
				bedtime.MinCaffeineCups, bedtime.MaxCaffeineCups)
		}
		d.CaffeineCups = n
	}
	sess := bedtime.NewSession(s.est, d)
	if res := sess.Result(); !res.OK {
		s.logger.Warn("bedtime calculation failed", zap.Error(res.Err))
	}
	return sess, nil
}

func (s *Server) pageData(sess *bedtime.Session) PageData {
	cups := make([]CupOption, 0, bedtime.MaxCaffeineCups)
	for n := bedtime.MinCaffeineCups; n <= bedtime.MaxCaffeineCups; n++ {
		cups = append(cups, CupOption{Value: n, Label: bedtime.CupsLabel(n), Selected: n == sess.CaffeineCups()})
	}
	return PageData{
		Wake:       sess.Wake().String(),
		Sleep:      bedtime.FormatHours(sess.SleepHours()),
		SleepLabel: sess.SleepLabel(),
		Coffee:     sess.CaffeineCups(),
		Cups:       cups,
		AtMinSleep: sess.SleepHours() <= bedtime.MinSleepHours,
		AtMaxSleep: sess.SleepHours() >= bedtime.MaxSleepHours,
		Version:    s.version,
		Result:     sess.Result(),
	}
}

func (s *Server) render(w http.ResponseWriter, data PageData) {
	if err := s.tpl.Execute(w, data); err != nil {
		s.logger.Error("render page", zap.Error(err))
	}
}

// calcURL returns "/?..." with only the values that differ from the defaults.
func (s *Server) calcURL(sess *bedtime.Session) string {
	v := url.Values{}
	if sess.Wake() != s.defaults.Wake {
		v.Set("wake", sess.Wake().String())
	}
	if sess.SleepHours() != s.defaults.SleepHours {
		v.Set("sleep", bedtime.FormatHours(sess.SleepHours()))
	}
	if sess.CaffeineCups() != s.defaults.CaffeineCups {
		v.Set("coffee", strconv.Itoa(sess.CaffeineCups()))
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// PrintListenAddrs lists the URLs the form is reachable on.
func PrintListenAddrs(out io.Writer, port int) {
	fmt.Fprintln(out, "Listening on:")
	fmt.Fprintf(out, "  http://127.0.0.1:%d/\n", port)

	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			ip, _, err := net.ParseCIDR(a.String())
			if err != nil || ip == nil || ip.IsLoopback() || ip.To4() == nil {
				continue
			}
			fmt.Fprintf(out, "  http://%s:%d/\n", ip.String(), port)
		}
	}
	fmt.Fprintln(out)
}
