package assistant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/models"
)

const groqURL = "https://api.groq.com/openai/v1/chat/completions"

// Fallback answers returned when the upstream call cannot be made or fails.
// The assistant is best-effort: no retries, no error propagation to callers.
const (
	FallbackNotConfigured = "The assistant is not configured."
	FallbackError         = "I could not find an answer to that right now."
)

var httpClient = &http.Client{Timeout: 15 * time.Second}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ProductAnswer builds a context block from the product's catalog data and
// FAQs and forwards the question to the chat API.
func ProductAnswer(db *gorm.DB, productID uint, question string) string {
	var product models.Product
	if err := db.Preload("Category").Preload("FAQs").First(&product, productID).Error; err != nil {
		return FallbackError
	}

	var info strings.Builder
	fmt.Fprintf(&info, "Product: %s\n", product.Title)
	if product.Category != nil {
		fmt.Fprintf(&info, "Category: %s\n", product.Category.Name)
	}
	fmt.Fprintf(&info, "Price: %.2f\nStock: %d\nDescription: %s", product.Price, product.Stock, product.Description)
	if len(product.FAQs) > 0 {
		info.WriteString("\n\nFAQ:")
		for _, faq := range product.FAQs {
			fmt.Fprintf(&info, "\nQ: %s\nA: %s", faq.Question, faq.Answer)
		}
	}

	return ask(info.String(), question)
}

func ask(context, question string) string {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return FallbackNotConfigured
	}

	body := chatRequest{
		Model: "llama-3.3-70b-versatile",
		Messages: []chatMessage{{
			Role:    "user",
			Content: fmt.Sprintf("Answer briefly. Context: %s\n\nQuestion: %s", context, question),
		}},
		MaxTokens: 150,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return FallbackError
	}

	req, err := http.NewRequest(http.MethodPost, groqURL, bytes.NewReader(payload))
	if err != nil {
		return FallbackError
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return FallbackError
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FallbackError
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || len(parsed.Choices) == 0 {
		return FallbackError
	}

	answer := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if answer == "" {
		return FallbackError
	}
	return answer
}
