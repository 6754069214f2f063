package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fitsight/internal/model"
)

// Insight AI 生成的经营摘要
type Insight struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations,omitempty"`
	Source          string   `json:"source"` // ai / fallback
}

// Summarizer 经营数据摘要器
// 未配置 API Key 或远端调用失败时降级为本地生成的固定格式摘要
type Summarizer struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewSummarizer 创建摘要器
func NewSummarizer(apiKey, baseURL, modelName string) *Summarizer {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}
	return &Summarizer{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   modelName,
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

// Summarize 生成经营摘要
// 任何失败都降级为本地摘要，不向调用方返回错误
func (s *Summarizer) Summarize(ctx context.Context, counts map[model.TableCategory]int, result model.ROIResult) Insight {
	if s.apiKey == "" {
		return fallbackInsight(counts, result)
	}

	summary, err := s.requestSummary(ctx, counts, result)
	if err != nil || strings.TrimSpace(summary) == "" {
		return fallbackInsight(counts, result)
	}

	return Insight{
		Summary: strings.TrimSpace(summary),
		Source:  "ai",
	}
}

// chat completions 请求/响应结构（只取用到的字段）
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// requestSummary 调用外部模型生成摘要
func (s *Summarizer) requestSummary(ctx context.Context, counts map[model.TableCategory]int, result model.ROIResult) (string, error) {
	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "你是一名健身房经营分析师，用中文输出简短的经营摘要和改进建议。"},
			{Role: "user", Content: buildPrompt(counts, result)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("摘要服务返回状态码 %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("摘要服务返回空结果")
	}
	return parsed.Choices[0].Message.Content, nil
}

// buildPrompt 拼装提示词
func buildPrompt(counts map[model.TableCategory]int, result model.ROIResult) string {
	var b strings.Builder
	b.WriteString("以下是一家健身房的经营数据，请给出 3 句以内的摘要和 2-3 条建议。\n数据规模：")
	for _, cat := range model.AllCategories() {
		fmt.Fprintf(&b, "%s %d 行，", cat.DisplayName(), counts[cat])
	}
	fmt.Fprintf(&b, "\n月收入 %.0f 元，月成本 %.0f 元，月利润 %.0f 元，年化回报率 %.1f%%。",
		result.MonthlyRevenue, result.MonthlyCosts, result.MonthlyProfit, result.AnnualROIPercent)
	if result.PaybackMonths.IsFinite() {
		fmt.Fprintf(&b, "预计 %.1f 个月回本。", float64(result.PaybackMonths))
	} else {
		b.WriteString("当前利润无法覆盖投资，不可回本。")
	}
	return b.String()
}

// fallbackInsight 本地降级摘要（无外部依赖，内容由数据直接生成）
func fallbackInsight(counts map[model.TableCategory]int, result model.ROIResult) Insight {
	total := 0
	for _, n := range counts {
		total += n
	}

	var summary string
	if result.MonthlyProfit > 0 {
		summary = fmt.Sprintf("当前共导入 %d 行经营数据。月收入 %.0f 元，月成本 %.0f 元，月利润 %.0f 元，经营状况为盈利。",
			total, result.MonthlyRevenue, result.MonthlyCosts, result.MonthlyProfit)
	} else {
		summary = fmt.Sprintf("当前共导入 %d 行经营数据。月收入 %.0f 元，月成本 %.0f 元，月利润 %.0f 元，尚未实现盈利。",
			total, result.MonthlyRevenue, result.MonthlyCosts, result.MonthlyProfit)
	}

	var recommendations []string
	if result.PaybackMonths.IsFinite() {
		recommendations = append(recommendations,
			fmt.Sprintf("按当前利润水平，预计 %.1f 个月收回投资。", float64(result.PaybackMonths)))
	} else {
		recommendations = append(recommendations, "月利润为非正值，需要先提高收入或压缩成本才能谈回本。")
	}
	recommendations = append(recommendations,
		fmt.Sprintf("保本需要每日约 %.1f 次预订，可对照排课容量评估出勤率目标。", result.BreakevenBookingsPerDay))

	return Insight{
		Summary:         summary,
		Recommendations: recommendations,
		Source:          "fallback",
	}
}
