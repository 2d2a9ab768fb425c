package server

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/san-kum/techsphere/internal/layout"
	"github.com/san-kum/techsphere/internal/orbit"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	return New(layout.DefaultIcons(), layout.Radius).Router()
}

func do(t *testing.T, r http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := do(t, newRouter(), http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

type iconsBody struct {
	Radius float64 `json:"radius"`
	Icons  []struct {
		Icon     string      `json:"icon"`
		Name     string      `json:"name"`
		Index    int         `json:"index"`
		Position layout.Vec3 `json:"position"`
		Roll     float64     `json:"roll"`
	} `json:"icons"`
}

func TestIcons(t *testing.T) {
	r := newRouter()

	w := do(t, r, http.MethodGet, "/api/icons", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	var body iconsBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Icons) != 19 || body.Radius != layout.Radius {
		t.Fatalf("got %d icons at radius %g", len(body.Icons), body.Radius)
	}
	first := body.Icons[0]
	if first.Name != "Django" || first.Icon != "django.svg" {
		t.Errorf("first icon = %+v", first)
	}
	want := layout.Place(0, 19, layout.Radius)
	if math.Abs(first.Position.Z-want.Z) > 1e-9 || first.Roll != 0 {
		t.Errorf("position = %+v, want %+v", first.Position, want)
	}

	w = do(t, r, http.MethodGet, "/api/icons?radius=2&t=1.5", nil)
	body = iconsBody{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	base := layout.Place(3, 19, 2)
	bobbed, roll := layout.Bob(base, 1.5)
	got := body.Icons[3]
	if math.Abs(got.Position.Y-bobbed.Y) > 1e-9 || math.Abs(got.Roll-roll) > 1e-9 {
		t.Errorf("bobbed icon = %+v, want %+v roll %g", got, bobbed, roll)
	}
}

func TestIconsBadRadius(t *testing.T) {
	r := newRouter()
	for _, q := range []string{"radius=0", "radius=-3", "radius=abc", "t=NaN"} {
		if w := do(t, r, http.MethodGet, "/api/icons?"+q, nil); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d", q, w.Code)
		}
	}
}

func TestLayout(t *testing.T) {
	r := newRouter()

	tests := []struct {
		query string
		code  int
		n     int
	}{
		{"n=19&radius=5.5", http.StatusOK, 19},
		{"n=4", http.StatusOK, 4},
		{"n=0", http.StatusBadRequest, 0},
		{"n=-1", http.StatusBadRequest, 0},
		{"n=5&radius=0", http.StatusBadRequest, 0},
		{"radius=3", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		w := do(t, r, http.MethodGet, "/api/layout?"+tt.query, nil)
		if w.Code != tt.code {
			t.Errorf("%s: status = %d, want %d", tt.query, w.Code, tt.code)
			continue
		}
		if tt.code != http.StatusOK {
			continue
		}
		var body struct {
			Radius float64       `json:"radius"`
			Points []layout.Vec3 `json:"points"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if len(body.Points) != tt.n {
			t.Errorf("%s: %d points", tt.query, len(body.Points))
		}
		for _, p := range body.Points {
			if math.Abs(p.Length()-body.Radius) > 1e-6 {
				t.Errorf("%s: point %+v off sphere", tt.query, p)
			}
		}
	}
}

func TestOrbitStep(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name string
		body string
		want float64
	}{
		{"clamps above", `{"polar": 2.5}`, orbit.RestAngle + orbit.DefaultRange},
		{"dragging clamps", `{"polar": 0.2, "dragging": true}`, orbit.RestAngle - orbit.DefaultRange},
		{"dragging in range holds", `{"polar": 1.8, "dragging": true}`, 1.8},
		{"relaxes", `{"polar": 1.8}`, 1.8 + (orbit.RestAngle-1.8)*orbit.Damping},
		{"zero range", `{"polar": 1.0, "range": 0}`, orbit.RestAngle},
		{"custom rest", `{"polar": 0, "rest": 1, "range": 2}`, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/orbit/step", []byte(tt.body))
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", w.Code, w.Body)
			}
			var st orbit.State
			if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
				t.Fatal(err)
			}
			if math.Abs(st.Polar-tt.want) > 1e-12 {
				t.Errorf("polar = %g, want %g", st.Polar, tt.want)
			}
		})
	}
}

func TestOrbitStepTicks(t *testing.T) {
	w := do(t, newRouter(), http.MethodPost, "/api/orbit/step", []byte(`{"polar": 2.0, "ticks": 100}`))
	var st orbit.State
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatal(err)
	}
	if math.Abs(st.Polar-orbit.RestAngle) >= 1e-4 {
		t.Errorf("not settled after 100 ticks: %g", st.Polar)
	}
}

func TestOrbitStepBadInput(t *testing.T) {
	r := newRouter()
	for _, body := range []string{`{"polar": 1, "range": -0.1}`, `not json`} {
		if w := do(t, r, http.MethodPost, "/api/orbit/step", []byte(body)); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d", body, w.Code)
		}
	}
}
