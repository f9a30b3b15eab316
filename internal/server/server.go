package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agenthands/docdiff/internal/compare"
	"github.com/agenthands/docdiff/internal/config"
	"github.com/agenthands/docdiff/internal/llm"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	errNotConfigured = "The AI comparison client is not configured. Please check the server logs for details."
	errMissingFiles  = "Please upload both files to compare."
	errInvalidFormat = "The AI returned an invalid format. Please try again."
)

// Server holds the process-wide comparer. A nil comparer means client
// initialization failed at startup; every POST then renders the
// configuration error without touching the upload.
type Server struct {
	Comparer *compare.Comparer
}

func NewServer(cfg *config.Config) *Server {
	client, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Printf("CRITICAL: failed to initialize LLM client, document comparison is disabled: %v", err)
		return &Server{}
	}

	return &Server{
		Comparer: compare.NewComparer(client),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", s.Index)
	r.POST("/", s.CompareFiles)

	return r
}

// resultView carries the model output into the template. The highlighted
// panes are rendered as raw HTML on purpose: the model's <del>/<ins> markup
// is trusted as-is, the same assumption the rest of the pipeline makes.
type resultView struct {
	Doc1Highlighted template.HTML
	Doc2Highlighted template.HTML
	Summary         []string
}

func (s *Server) render(c *gin.Context, results *resultView, errMsg string) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Results": results,
		"Error":   errMsg,
	})
}

func (s *Server) Index(c *gin.Context) {
	s.render(c, nil, "")
}

func (s *Server) CompareFiles(c *gin.Context) {
	if s.Comparer == nil {
		s.render(c, nil, errNotConfigured)
		return
	}

	file1, err1 := c.FormFile("file1")
	file2, err2 := c.FormFile("file2")
	if err1 != nil || err2 != nil {
		s.render(c, nil, errMissingFiles)
		return
	}

	content1, err := readUpload(file1)
	if err != nil {
		s.renderUnexpected(c, err)
		return
	}
	content2, err := readUpload(file2)
	if err != nil {
		s.renderUnexpected(c, err)
		return
	}

	result, err := s.Comparer.Compare(c.Request.Context(), content1, content2)
	if err != nil {
		if errors.Is(err, compare.ErrInvalidFormat) {
			s.render(c, nil, errInvalidFormat)
			return
		}
		s.renderUnexpected(c, err)
		return
	}

	s.render(c, &resultView{
		Doc1Highlighted: template.HTML(result.Doc1Highlighted),
		Doc2Highlighted: template.HTML(result.Doc2Highlighted),
		Summary:         result.Summary,
	}, "")
}

// renderUnexpected logs the full error under a request id and surfaces the
// short description to the page.
func (s *Server) renderUnexpected(c *gin.Context, err error) {
	id := uuid.NewString()
	log.Printf("--- AN ERROR OCCURRED DURING COMPARISON [%s] ---\n%+v\n-----------------------------------------", id, err)
	s.render(c, nil, fmt.Sprintf("An unexpected error occurred. Please check the server logs for details. Error: %v", err))
}

func readUpload(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()
	return compare.ReadDocument(f), nil
}
