package calculator

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// 运行配置，只影响传输、日志和预设工况来源，不影响计算结果
type Config struct {
	Addr            string
	Path            string
	ReadBufferSize  int
	WriteBufferSize int

	LogLevel  string
	LogFormat string

	PresetFile string
}

func DefaultConfig() Config {
	return loadCfg(ini.Empty())
}

// 配置文件不存在时使用默认配置
func LoadConfig(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.WithField("file", path).Warn("配置文件不存在，使用默认配置")
		return DefaultConfig(), nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, err
	}
	return loadCfg(file), nil
}

func loadCfg(file *ini.File) Config {
	return Config{
		Addr:            file.Section("server").Key("Addr").MustString(":9000"),
		Path:            file.Section("server").Key("Path").MustString("/ws"),
		ReadBufferSize:  file.Section("server").Key("ReadBufferSize").MustInt(1024),
		WriteBufferSize: file.Section("server").Key("WriteBufferSize").MustInt(1024),
		LogLevel:        file.Section("log").Key("Level").MustString("info"),
		LogFormat:       file.Section("log").Key("Format").MustString("text"),
		PresetFile:      file.Section("preset").Key("File").MustString("conf/presets.toml"),
	}
}
