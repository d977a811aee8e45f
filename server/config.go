package server

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"tofu/model"
)

var cfg Config

type Config struct {
	Addr string

	ReportVersion string
	ReportPrefix  string
	PDFFontPath   string

	NPSHSafetyMargin float64

	RefrigerantTable string

	Project model.ProjectInfo
}

// 读取配置文件，文件缺失时使用默认值
func LoadConfig(path string) {
	file, err := ini.Load(path)
	if err != nil {
		log.Warn("配置文件读取错误，使用默认配置: ", err)
		file = ini.Empty()
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	cfg = Config{
		Addr: file.Section("server").Key("Addr").MustString(":9000"),

		ReportVersion: file.Section("report").Key("Version").MustString("1.0"),
		ReportPrefix:  file.Section("report").Key("Prefix").MustString("PD"),
		PDFFontPath:   file.Section("report").Key("FontPath").MustString(""),

		NPSHSafetyMargin: file.Section("npsha").Key("SafetyMargin").MustFloat64(0.5),

		RefrigerantTable: file.Section("refrigerant").Key("TablePath").MustString(""),

		Project: model.ProjectInfo{
			CompanyName:    file.Section("project").Key("CompanyName").MustString(""),
			ProjectNumber:  file.Section("project").Key("ProjectNumber").MustString(""),
			ProjectName:    file.Section("project").Key("ProjectName").MustString(""),
			SubprojectName: file.Section("project").Key("SubprojectName").MustString(""),
		},
	}
}
