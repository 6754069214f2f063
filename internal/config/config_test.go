package config

import "testing"

// TestDefaultConfig 测试默认配置
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != 20280 {
		t.Errorf("Port = %d, want 20280", cfg.Server.Port)
	}
	if cfg.Data.DataDir != "data" {
		t.Errorf("DataDir = %s, want data", cfg.Data.DataDir)
	}
	if cfg.Scenario.TotalInvestment <= 0 {
		t.Error("默认场景应有正的投资额")
	}
}

// TestScenarioBaseInput 测试场景配置到测算输入的转换
func TestScenarioBaseInput(t *testing.T) {
	sc := ScenarioConfig{
		ClassesPerDay: 8,
		AvgSpend:      50,
	}

	in := sc.BaseInput()
	if in.ClassesPerDay != 8 || in.AvgSpend != 50 {
		t.Errorf("BaseInput = %+v", in)
	}
	if in.MembershipPrice != nil || in.DayPassPrice != nil || in.ClassPackPrice != nil {
		t.Error("场景配置不应设置价格覆盖项")
	}
}

// TestIsPortSpecifiedInToml 测试 toml 中是否显式写了端口
func TestIsPortSpecifiedInToml(t *testing.T) {
	cases := []struct {
		name string
		toml string
		want bool
	}{
		{"显式端口", "[server]\nport = 8080\n", true},
		{"无 server 段", "[data]\ndata_dir = \"data\"\n", false},
		{"server 段无端口", "[server]\ndev_mode = true\n", false},
		{"非法 toml", "not toml at all [[", false},
	}

	for _, tc := range cases {
		if got := isPortSpecifiedInToml([]byte(tc.toml)); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
