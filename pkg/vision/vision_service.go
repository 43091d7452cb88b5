package vision

import (
	"NutriSnap-Backend/domain"
	"NutriSnap-Backend/internal/utils"
	"NutriSnap-Backend/internal/utils/metrics"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

const visionPrompt = `You are a nutrition expert. Analyze this food image and provide a detailed nutritional breakdown.

Respond ONLY with a valid JSON object in this exact format:
{
  "foodItems": ["item1", "item2"],
  "totalCalories": number,
  "protein": number (in grams),
  "carbs": number (in grams),
  "fats": number (in grams),
  "fiber": number (in grams),
  "sugar": number (in grams),
  "servingSize": "description",
  "confidence": "high/medium/low",
  "notes": "any additional observations"
}

Be as accurate as possible with the estimates. If unsure, indicate lower confidence. Do not include explanations, markdown formatting, or extra text.`

type (
	// VisionService wraps the single Gemini HTTP call that estimates
	// nutrition from a meal photo.
	VisionService interface {
		AnalyzeMealImage(ctx context.Context, imageFile *multipart.FileHeader) (domain.FoodAnalysis, error)
	}

	visionService struct {
		httpClient *http.Client
	}
)

func NewVisionService() VisionService {
	return &visionService{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *visionService) AnalyzeMealImage(ctx context.Context, imageFile *multipart.FileHeader) (domain.FoodAnalysis, error) {
	file, err := imageFile.Open()
	if err != nil {
		return domain.FoodAnalysis{}, err
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return domain.FoodAnalysis{}, err
	}

	base64Image := base64.StdEncoding.EncodeToString(fileData)

	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return domain.FoodAnalysis{}, fmt.Errorf("GEMINI_API_KEY not configured")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return domain.FoodAnalysis{}, fmt.Errorf("GEMINI_MODEL not configured")
	}

	mimeType := imageFile.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = detectMimeType(imageFile.Filename)
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": visionPrompt,
					},
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      base64Image,
						},
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return domain.FoodAnalysis{}, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return domain.FoodAnalysis{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		metrics.VisionAnalysisTotal.WithLabelValues("error").Inc()
		return domain.FoodAnalysis{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		metrics.VisionAnalysisTotal.WithLabelValues("error").Inc()
		return domain.FoodAnalysis{}, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return domain.FoodAnalysis{}, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		metrics.VisionAnalysisTotal.WithLabelValues("error").Inc()
		return domain.FoodAnalysis{}, domain.ErrVisionAnalysisFailed
	}

	responseText := geminiResp.Candidates[0].Content.Parts[0].Text
	analysis, ok := parseAnalysisResponse(responseText)
	if !ok {
		utils.Logger.Warn("vision_parse_fallback", zap.String("raw", responseText))
		metrics.VisionAnalysisTotal.WithLabelValues("fallback").Inc()
	} else {
		metrics.VisionAnalysisTotal.WithLabelValues("ok").Inc()
	}

	return analysis, nil
}

var jsonPattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseAnalysisResponse extracts the JSON object from the model's text
// output, tolerating markdown fences and surrounding chatter. When the
// payload cannot be parsed it returns a low-confidence fallback so the
// caller can still persist a correctable entry.
func parseAnalysisResponse(responseText string) (domain.FoodAnalysis, bool) {
	if matches := jsonPattern.FindString(responseText); matches != "" {
		responseText = matches
	}

	responseText = strings.TrimSpace(responseText)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
	}
	responseText = strings.TrimSpace(responseText)

	var analysis domain.FoodAnalysis
	if err := json.Unmarshal([]byte(responseText), &analysis); err != nil {
		return fallbackAnalysis(), false
	}

	if len(analysis.FoodItems) == 0 {
		analysis.FoodItems = []string{"Unknown food item"}
	}
	if analysis.Calories < 0 {
		analysis.Calories = 0
	}
	switch analysis.Confidence {
	case "high", "medium", "low":
	default:
		analysis.Confidence = "low"
	}

	return analysis, true
}

func fallbackAnalysis() domain.FoodAnalysis {
	return domain.FoodAnalysis{
		FoodItems:   []string{"Unknown food item"},
		ServingSize: "Unknown",
		Confidence:  "low",
		Notes:       "Could not accurately analyze the image. Please try again or enter manually.",
	}
}

func detectMimeType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
