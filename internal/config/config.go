package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"fitsight/internal/model"
)

// AppConfig 应用配置
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Scenario ScenarioConfig `toml:"scenario"`
	AI       AIConfig       `toml:"ai"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// ScenarioConfig 基准测算场景默认值
type ScenarioConfig struct {
	ClassesPerDay   float64 `toml:"classes_per_day"`
	ClientsPerClass float64 `toml:"clients_per_class"`
	OccupancyPct    float64 `toml:"occupancy_pct"`
	ClassPrice      float64 `toml:"class_price"`
	DropInPerDay    float64 `toml:"drop_in_per_day"`
	Members         float64 `toml:"members"`
	DayPasses       float64 `toml:"day_passes"`
	ClassPacks      float64 `toml:"class_packs"`
	AvgSpend        float64 `toml:"avg_spend"`
	FixedCosts      float64 `toml:"fixed_costs"`
	VariableCosts   float64 `toml:"variable_costs"`
	MonthlySalaries float64 `toml:"monthly_salaries"`
	TotalInvestment float64 `toml:"total_investment"`
}

// AIConfig 摘要服务配置
type AIConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20280,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Scenario: ScenarioConfig{
			ClassesPerDay:   6,
			ClientsPerClass: 12,
			OccupancyPct:    65,
			ClassPrice:      15,
			DropInPerDay:    3,
			Members:         120,
			DayPasses:       40,
			ClassPacks:      25,
			AvgSpend:        45,
			FixedCosts:      18000,
			VariableCosts:   6000,
			MonthlySalaries: 22000,
			TotalInvestment: 250000,
		},
		AI: AIConfig{
			Model: "gpt-4o-mini",
		},
	}
}

// BaseInput 基准场景转为测算输入（价格覆盖项留空，按客均消费倍率取默认）
func (c ScenarioConfig) BaseInput() model.ROIInput {
	return model.ROIInput{
		ClassesPerDay:   c.ClassesPerDay,
		ClientsPerClass: c.ClientsPerClass,
		OccupancyPct:    c.OccupancyPct,
		ClassPrice:      c.ClassPrice,
		DropInPerDay:    c.DropInPerDay,
		Members:         c.Members,
		DayPasses:       c.DayPasses,
		ClassPacks:      c.ClassPacks,
		AvgSpend:        c.AvgSpend,
		FixedCosts:      c.FixedCosts,
		VariableCosts:   c.VariableCosts,
		MonthlySalaries: c.MonthlySalaries,
		TotalInvestment: c.TotalInvestment,
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 从 config.toml 加载配置并返回元信息
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// 配置文件不存在，使用默认配置
			applyEnvOverrides(config)
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnvOverrides(config)

	return config, info, nil
}

// applyEnvOverrides 环境变量覆盖（用于 E2E / 本地运行）
func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("FITSIGHT_AI_API_KEY"); v != "" {
		config.AI.APIKey = v
	}
	if v := os.Getenv("FITSIGHT_AI_BASE_URL"); v != "" {
		config.AI.BaseURL = v
	}
}

// LoadConfig 从 config.toml 加载配置
// 配置文件位于可执行文件同目录下
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig 保存配置到 config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir 确保数据目录存在
// 数据目录位于可执行文件同目录下
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	// 创建子目录
	subdirs := []string{"uploads", "exports"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
