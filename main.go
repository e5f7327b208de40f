package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"ocavior-site/config"
	"ocavior-site/controllers/pages"
	apiv1 "ocavior-site/controllers/v1"
	"ocavior-site/db"
	_ "ocavior-site/docs"
	"ocavior-site/fiberlog"
	"ocavior-site/initializers"
	"ocavior-site/lib/ws"
	"ocavior-site/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/swag"
)

// multipart overhead on top of the resume itself
const formOverhead = 1024 * 1024

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	bodyLimit := initializers.MaxResumeSize() + formOverhead
	app := fiber.New(fiber.Config{
		BodyLimit: int(bodyLimit),
	})
	app.Use(fiberRecover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.ErrNotify(config.Conf.ErrNotify.Addr))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))
	app.Get("/swagger/doc.json", func(ctx *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return err
		}
		ctx.Type("json")
		return ctx.SendString(doc)
	})
	app.Static("/static", "./static")

	//pages
	pages.InitSitePageRouters(app,
		fiberlog.New(*initializers.LoggerConfig),
		middleware.VisitorSession(initializers.SessionTTL()),
		middleware.WithBodyLimit(bodyLimit),
	)

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST",
	}))
	apiV1.Use(middleware.VisitorSession(initializers.SessionTTL()))
	apiV1.Use("/careers/apply", middleware.WithBodyLimit(bodyLimit))
	apiv1.InitContentApiRouters(apiV1)
	apiv1.InitCareersApiRouters(apiV1)
	apiv1.InitHealthApiRouters(apiV1, db.DB != nil)

	//admin
	admin := fiber.New()
	apiV1.Mount("/admin", admin)
	apiv1.InitAdminApiRouters(admin, config.Conf.Auth.JWTSecret)

	//ws
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	ws.InitWs(ctx, wsApp)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
