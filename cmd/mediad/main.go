package main

import (
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		configModule,
		storageModule,
		audioModule,
		serviceModule,
		httpModule,
	)
	app.Run()
}
