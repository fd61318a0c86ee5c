package initializers

import (
	"context"

	"hr-system-backend/config"
	"hr-system-backend/fiberlog"
	departmentprovider "hr-system-backend/lib/dicts/department"
	dictionaryprovider "hr-system-backend/lib/dicts/dictionary"
	languageprovider "hr-system-backend/lib/dicts/language"
	positionprovider "hr-system-backend/lib/dicts/position"
	employeeprovider "hr-system-backend/lib/employee"
	xlsexport "hr-system-backend/lib/export/xls"
	reportprovider "hr-system-backend/lib/report"
	usersprovider "hr-system-backend/lib/users"
	"hr-system-backend/lib/watch"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	watch.Init()
	usersprovider.NewHandler()
	departmentprovider.NewHandler()
	positionprovider.NewHandler()
	languageprovider.NewHandler()
	dictionaryprovider.NewHandler()
	employeeprovider.NewHandler()
	xlsexport.NewHandler()
	reportprovider.NewHandler()
}
