package main

import (
	"fmt"
	"time"

	"bucketlist/bucket-api/api"
	"bucketlist/bucket-api/config"
	"bucketlist/bucket-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	a, err := api.NewRouter()
	if err != nil {
		panic(err)
	}

	if viper.GetBool("cleanup.enabled") {
		retention := time.Duration(viper.GetInt("cleanup.retention_days")) * 24 * time.Hour
		service.AccountCleanup(time.Hour, retention, a.DB)
	}

	zap.L().Info("Server starting")

	err = a.Router.Run(fmt.Sprintf(":%d", viper.GetInt("host.port")))
	if err != nil {
		panic(err)
	}
}
