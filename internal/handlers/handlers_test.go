package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"formsd/internal/forms"
	"formsd/internal/handlers"
	"formsd/internal/storage"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type brokenBackend struct{}

func (brokenBackend) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (brokenBackend) Save(context.Context, string, []byte) error {
	return errors.New("disk on fire")
}

const sampleForm = `{
	"id": "f1",
	"title": "Customer Feedback Form",
	"description": "Please fill out this form",
	"fields": [
		{"id": "name", "label": "Name", "type": "text", "enabled": true},
		{"id": "email", "label": "Email", "type": "email", "enabled": true},
		{"id": "age", "label": "Age", "type": "number", "enabled": false}
	],
	"createdAt": "2024-01-01T00:00:00.000Z"
}`

var _ = Describe("Form API", func() {
	var (
		e        *echo.Echo
		backend  storage.Collection
		validate bool
	)

	do := func(method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		var out map[string]any
		Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(Succeed(), rec.Body.String())
		return rec, out
	}

	JustBeforeEach(func() {
		e = echo.New()
		e.HTTPErrorHandler = handlers.ErrorHandler
		svc := forms.NewService(backend, forms.WithResponseValidation(validate))
		handlers.Register(e, svc, "https://forms.example.com")
	})

	BeforeEach(func() {
		backend = storage.NewMemory()
		validate = false
	})

	Context("POST /api/forms", func() {
		It("stores the form without its disabled fields and echoes it", func() {
			rec, out := do(http.MethodPost, "/api/forms", sampleForm)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(out["success"]).To(BeTrue())
			form := out["form"].(map[string]any)
			Expect(form["id"]).To(Equal("f1"))
			Expect(form["fields"]).To(HaveLen(2))
		})

		It("stores unknown keys and non-string values as given", func() {
			body := `{"id":"raw","title":5,"theme":"dark","fields":[{"id":"name","label":"Name","type":"text","placeholder":"Your name","required":true}],"createdAt":"2024-01-01T00:00:00.000Z"}`
			rec, _ := do(http.MethodPost, "/api/forms", body)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var want map[string]any
			Expect(json.Unmarshal([]byte(body), &want)).To(Succeed())
			_, out := do(http.MethodGet, "/api/forms/raw", "")
			Expect(out["form"]).To(Equal(want))
		})

		It("rejects a body that is not a JSON object", func() {
			rec, out := do(http.MethodPost, "/api/forms", `[1,2]`)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(out["success"]).To(BeFalse())
		})

		When("a form with the same id exists", func() {
			It("replaces it", func() {
				do(http.MethodPost, "/api/forms", sampleForm)
				do(http.MethodPost, "/api/forms", `{"id":"other","title":"x","fields":[]}`)
				do(http.MethodPost, "/api/forms", `{"id":"f1","title":"Renamed","fields":[]}`)

				_, out := do(http.MethodGet, "/api/forms", "")
				list := out["forms"].([]any)
				Expect(list).To(HaveLen(2))
				Expect(list[0].(map[string]any)["title"]).To(Equal("Renamed"))
			})
		})
	})

	Context("GET /api/forms", func() {
		It("returns an empty list when nothing was saved", func() {
			rec, out := do(http.MethodGet, "/api/forms", "")

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(out["forms"]).To(BeEmpty())
			Expect(out["forms"]).NotTo(BeNil())
		})
	})

	Context("GET /api/forms/:formId", func() {
		It("returns the saved form", func() {
			do(http.MethodPost, "/api/forms", sampleForm)

			rec, out := do(http.MethodGet, "/api/forms/f1", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(out["form"].(map[string]any)["createdAt"]).To(Equal("2024-01-01T00:00:00.000Z"))
		})

		It("answers 404 for an unknown id", func() {
			rec, out := do(http.MethodGet, "/api/forms/nope", "")

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(out).To(Equal(map[string]any{"success": false, "error": "Form not found"}))
		})
	})

	Context("responses", func() {
		JustBeforeEach(func() {
			do(http.MethodPost, "/api/forms", sampleForm)
		})

		It("appends valid responses in order", func() {
			for _, name := range []string{"Alice", "Bob"} {
				rec, out := do(http.MethodPost, "/api/forms/f1/responses", `{"name":"`+name+`","email":"`+strings.ToLower(name)+`@example.com"}`)
				Expect(rec.Code).To(Equal(http.StatusOK))
				Expect(out["message"]).To(Equal("Response saved successfully"))
			}

			rec, out := do(http.MethodGet, "/api/forms/f1/responses", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			list := out["responses"].([]any)
			Expect(list).To(HaveLen(2))
			first := list[0].(map[string]any)
			Expect(first["name"]).To(Equal("Alice"))
			Expect(first["submittedAt"]).NotTo(BeEmpty())
		})

		It("stores values as given when validation is off", func() {
			rec, _ := do(http.MethodPost, "/api/forms/f1/responses", `{"email":"not-an-email"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			_, out := do(http.MethodGet, "/api/forms/f1/responses", "")
			Expect(out["responses"]).To(HaveLen(1))
		})

		When("response validation is enabled", func() {
			BeforeEach(func() {
				validate = true
			})

			It("rejects a response failing validation", func() {
				rec, out := do(http.MethodPost, "/api/forms/f1/responses", `{"name":"Alice","email":"not-an-email"}`)

				Expect(rec.Code).To(Equal(http.StatusBadRequest))
				Expect(out["error"]).To(Equal("Please enter a valid email address"))

				_, out = do(http.MethodGet, "/api/forms/f1/responses", "")
				Expect(out["responses"]).To(BeEmpty())
			})
		})

		It("answers 404 for an unknown form and writes nothing", func() {
			rec, _ := do(http.MethodPost, "/api/forms/ghost/responses", `{"name":"Alice"}`)
			Expect(rec.Code).To(Equal(http.StatusNotFound))

			_, err := backend.Load(context.Background(), forms.ResponsesKey("ghost"))
			Expect(err).To(MatchError(storage.ErrNotExist))
		})

		It("answers 404 for an unknown form even when the body is malformed", func() {
			rec, out := do(http.MethodPost, "/api/forms/ghost/responses", `{"name":`)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(out["error"]).To(Equal("Form not found"))
		})

		It("answers 400 for a malformed body on a known form", func() {
			rec, _ := do(http.MethodPost, "/api/forms/f1/responses", `{"name":`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("lists no responses for an unknown form", func() {
			rec, out := do(http.MethodGet, "/api/forms/ghost/responses", "")

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(out["responses"]).To(BeEmpty())
		})
	})

	Context("GET /api/forms/:formId/link", func() {
		It("builds a pre-filled link from matching query parameters", func() {
			do(http.MethodPost, "/api/forms", sampleForm)

			rec, out := do(http.MethodGet, "/api/forms/f1/link?email=a%40b.co&utm=x&name=Alice", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(out["link"]).To(Equal("https://forms.example.com/form/f1?name=Alice&email=a%40b.co"))
		})

		It("answers 404 for an unknown form", func() {
			rec, _ := do(http.MethodGet, "/api/forms/ghost/link", "")
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("GET /api/fields", func() {
		It("returns the default catalog", func() {
			_, out := do(http.MethodGet, "/api/fields", "")
			Expect(out["fields"]).To(HaveLen(5))
		})
	})

	Context("unknown routes", func() {
		It("uses the error envelope", func() {
			rec, out := do(http.MethodGet, "/api/nothing", "")

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(out["success"]).To(BeFalse())
		})
	})

	When("storage fails", func() {
		BeforeEach(func() {
			backend = brokenBackend{}
		})

		It("answers 500 with the error message on every operation", func() {
			for _, call := range [][3]string{
				{http.MethodPost, "/api/forms", sampleForm},
				{http.MethodGet, "/api/forms", ""},
				{http.MethodGet, "/api/forms/f1", ""},
				{http.MethodPost, "/api/forms/f1/responses", `{"name":"Alice"}`},
				{http.MethodGet, "/api/forms/f1/responses", ""},
			} {
				rec, out := do(call[0], call[1], call[2])
				Expect(rec.Code).To(Equal(http.StatusInternalServerError), call[1])
				Expect(out["success"]).To(BeFalse())
				Expect(out["error"]).To(ContainSubstring("disk on fire"))
			}
		})
	})
})
