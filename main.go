package main

import (
	"log"

	"github.com/ZachMcM/purdue-hoops/config"
	"github.com/ZachMcM/purdue-hoops/database"
	"github.com/ZachMcM/purdue-hoops/handlers"
	"github.com/ZachMcM/purdue-hoops/middleware"
	"github.com/ZachMcM/purdue-hoops/services"
	"github.com/ZachMcM/purdue-hoops/store"
	"github.com/ZachMcM/purdue-hoops/websocket"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.CreateTables(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	websocket.InitHub()

	st := store.NewMySQLStore(database.DB)
	ratingService := services.NewRatingService(st)
	friendService := services.NewFriendService(st)
	accountService := services.NewAccountService(st)
	statusService := services.NewStatusService(st)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", handlers.Signup)
		auth.POST("/signin", handlers.Signin)
		auth.GET("/session", middleware.AuthMiddleware(), handlers.GetSession)
	}

	users := r.Group("/api/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/search", handlers.SearchUsers)
		users.GET("/leaderboard", handlers.GetLeaderboard)
		users.GET("/:user_id", handlers.GetUser)
		users.PUT("/account", handlers.UpdateAccount)
		users.PUT("/account/setup", handlers.SetupAccount)
		users.PUT("/profile", handlers.UpdateProfile)
		users.DELETE("", handlers.DeleteAccount(accountService))
		users.PUT("/:user_id/ratings", handlers.SubmitRating(ratingService))
	}

	friends := r.Group("/api/friends")
	friends.Use(middleware.AuthMiddleware())
	{
		friends.GET("/all", handlers.GetFriends(friendService))
		friends.GET("/requests/incoming", handlers.GetIncomingFriendRequests(friendService))
		friends.GET("/status/:user_id", handlers.GetFriendshipStatus(friendService))
		friends.POST("/requests", handlers.SendFriendRequest(friendService))
		friends.PUT("/requests/incoming/:friendship_id", handlers.AcceptFriendRequest(friendService))
		friends.DELETE("/requests/:friendship_id", handlers.RemoveFriendship(friendService))
	}

	status := r.Group("/api/status")
	status.Use(middleware.AuthMiddleware())
	{
		status.GET("", handlers.GetHoopingStatus(statusService))
		status.PUT("", handlers.UpdateHoopingStatus(statusService))
	}

	gyms := r.Group("/api/gyms")
	gyms.Use(middleware.AuthMiddleware())
	{
		gyms.GET("", handlers.GetGymRoster)
	}

	searches := r.Group("/api/searches")
	searches.Use(middleware.AuthMiddleware())
	{
		searches.GET("", handlers.GetSearchHistory)
		searches.POST("", handlers.AddSearch)
		searches.DELETE("/:user_id", handlers.RemoveSearch)
	}

	r.GET("/ws", websocket.HandleWebSocket)

	log.Printf("Server starting on %s", config.Cfg.ServerAddr)
	if err := r.Run(config.Cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
