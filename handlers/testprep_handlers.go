package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"testprep-server/answerkey"
	"testprep-server/grading"
	"testprep-server/models"
	"testprep-server/report"
)

// CorrectAnswers grades a submission against the answer key.
// POST /api/testprep/correct
//
// The body may be a bare array of answers or {"answers": [...]}; both shapes
// are accepted for compatibility with existing clients.
func CorrectAnswers(src answerkey.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
			return
		}

		var answers []models.UserAnswer
		if err := json.Unmarshal(raw, &answers); err != nil {
			var wrapped struct {
				Answers []models.UserAnswer `json:"answers"`
			}
			if err := json.Unmarshal(raw, &wrapped); err != nil || wrapped.Answers == nil {
				// Echo the payload back so clients can see what was rejected.
				var received any = string(raw)
				if json.Valid(raw) {
					received = json.RawMessage(raw)
				}
				c.JSON(http.StatusBadRequest, gin.H{
					"error":    "Request body must be an array of answers or an object with an \"answers\" array",
					"received": received,
				})
				return
			}
			answers = wrapped.Answers
		}
		if len(answers) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one answer is required"})
			return
		}

		// The key is re-read on every call; updates take effect immediately.
		key, err := src.Load(c.Request.Context())
		if err != nil {
			log.Printf("Error loading answer key: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Processing failed: %v", err)})
			return
		}

		result, err := grading.Correct(key, answers)
		if err != nil {
			log.Printf("Error correcting answers: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Processing failed: %v", err)})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GeneratePDF renders the results report and streams it back as a PDF
// attachment.
// POST /api/testprep/generate-pdf
func GeneratePDF(gen *report.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data models.PdfData
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
		if len(data.Answers) == 0 || data.TestDetails == (models.TestDetails{}) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Both answers and testDetails are required"})
			return
		}

		pdf, err := gen.GeneratePDF(c.Request.Context(), data)
		if err != nil {
			log.Printf("Error generating PDF: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF generation failed", "details": err.Error()})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=test_results.pdf")
		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}

// ReportPreview renders the report document as plain HTML, without chart
// rasterization, so the layout can be checked in a browser while iterating
// on the template.
// POST /api/testprep/report/preview
func ReportPreview(gen *report.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data models.PdfData
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
		if len(data.Answers) == 0 || data.TestDetails == (models.TestDetails{}) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Both answers and testDetails are required"})
			return
		}
		c.HTML(http.StatusOK, "report", gen.Tips().BuildReportData(data))
	}
}

// Health reports liveness.
// GET /healthz
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
