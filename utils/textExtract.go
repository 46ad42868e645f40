package utils

import (
	"campus/config"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// extractResponse is the payload returned by the text-extraction service.
type extractResponse struct {
	Text    string `json:"text"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ExtractText sends a stored document to the extraction collaborator and
// returns its plain-text contents. The call either returns text or fails as
// a whole; there is no partial result. Binary parsing never happens here.
func ExtractText(filePath string) (string, error) {
	client := resty.New().SetTimeout(30 * time.Second)

	request := client.R().
		SetFile("document", filePath).
		SetResult(&extractResponse{})
	if config.AppConfig.ExtractorApiKey != "" {
		request.SetHeader("Authorization", "Bearer "+config.AppConfig.ExtractorApiKey)
	}

	response, err := request.Post(config.AppConfig.ExtractorApiURL)
	if err != nil {
		return "", fmt.Errorf("extraction request failed: %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("extraction service returned %d: %s", response.StatusCode(), response.String())
	}

	result, ok := response.Result().(*extractResponse)
	if !ok || result.Text == "" {
		return "", fmt.Errorf("extraction service returned no text")
	}

	return result.Text, nil
}
