package util

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenBrowser 在系统默认浏览器中打开地址
// 失败不影响服务运行，调用方自行提示手动访问
func OpenBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "linux":
		if _, err := exec.LookPath("xdg-open"); err == nil {
			return exec.Command("xdg-open", url).Start()
		}
		return fmt.Errorf("未找到 xdg-open")
	default:
		return fmt.Errorf("不支持的平台: %s", runtime.GOOS)
	}
}
