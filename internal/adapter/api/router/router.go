package router

import (
	"net"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"bazaartrack/internal/adapter/api"
	"bazaartrack/internal/adapter/api/handler"
	"bazaartrack/internal/adapter/api/middleware"
	"bazaartrack/pkg/logger"
	"bazaartrack/pkg/response"
)

type Options struct {
	Environment    string
	AllowedOrigins []string
	// TrustedProxies are CIDRs allowed to set X-Forwarded-For. Without any, the peer address identifies the client.
	TrustedProxies []string
	// GeneralLimit applies to every request; ChatLimit additionally guards the model-provider route.
	GeneralLimit echo.MiddlewareFunc
	ChatLimit    echo.MiddlewareFunc
}

// NewServer assembles echo with the shared middleware stack, the access gate and every route.
func NewServer(h *handler.Handlers, gate *middleware.AccessGate, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = response.HTTPErrorHandler
	e.IPExtractor = ipExtractor(opts.TrustedProxies)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("%s %s %d %v %s", v.Method, v.URI, v.Status, v.Latency, v.RemoteIP)
			return nil
		},
	}))

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	if opts.GeneralLimit != nil {
		e.Use(opts.GeneralLimit)
	}
	e.Use(gate.Middleware())

	Setup(e, h, opts)
	return e
}

func ipExtractor(trusted []string) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}

	trustOpts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trusted {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			logger.Warn("Ignoring invalid trusted proxy %q: %v", cidr, err)
			continue
		}
		trustOpts = append(trustOpts, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(trustOpts...)
}

func Setup(e *echo.Echo, h *handler.Handlers, opts Options) {
	SetupHealthRouter(e, h.Health)
	SetupUserRouter(e, h.User)
	SetupProductRouter(e, h.Product)
	SetupAdvertisementRouter(e, h.Advertisement)
	SetupPaymentRouter(e, h.Payment)
	SetupWatchListRouter(e, h.WatchList)
	SetupReviewRouter(e, h.Review)
	SetupChatRouter(e, h.Chat, opts.ChatLimit)
	SetupFileRouter(e, h.File)
	SetupAdminRouter(e, h.Admin)
	SetupWebSocketRouter(e, h.WebSocket)
	SetupDevRouter(e, h.DevToken, opts.Environment)
}
