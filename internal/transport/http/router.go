package handlers

import (
	"time"

	"makon/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Auth        *AuthHandler
	Progress    *ProgressHandler
	Shop        *ShopHandler
	Wallet      *WalletHandler
	Course      *CourseHandler
	Community   *CommunityHandler
	Affiliate   *AffiliateHandler
	Chat        *ChatHandler
	Leaderboard *LeaderboardHandler

	Validator   middleware.TokenValidator
	Limiter     *middleware.RateLimiter
	FrontendURL string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{deps.FrontendURL}
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	// Публичный переход по реферальной ссылке
	r.GET("/ref/:code", deps.Affiliate.Redirect)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", deps.Auth.Register)
			auth.POST("/login", deps.Limiter.Limit("login", 5, 1*time.Minute), deps.Auth.Login)
			auth.POST("/refresh", deps.Auth.Refresh)
			auth.POST("/logout", deps.Auth.Logout)
		}

		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(deps.Validator))
		{
			authorized.GET("/user/me", deps.Auth.Me)

			authorized.POST("/progress/save", deps.Progress.Save)
			authorized.GET("/progress", deps.Progress.Get)

			authorized.GET("/shop/items", deps.Shop.Items)
			authorized.POST("/shop/buy", deps.Shop.Buy)
			authorized.GET("/wallet", deps.Wallet.Get)

			authorized.GET("/courses", deps.Course.List)
			authorized.GET("/courses/:id", deps.Course.GetOne)

			authorized.GET("/community/posts", deps.Community.Feed)
			authorized.POST("/community/posts", deps.Community.CreatePost)
			authorized.POST("/community/posts/:id/like", deps.Community.ToggleLike)

			authorized.GET("/leaderboard", deps.Leaderboard.Top)

			authorized.GET("/affiliate/link", deps.Affiliate.GetLink)
			authorized.GET("/affiliate/stats", deps.Affiliate.Stats)

			authorized.POST("/chat", deps.Limiter.Limit("chat", 20, 1*time.Minute), deps.Chat.Chat)
		}
	}

	return r
}
