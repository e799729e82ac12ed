package routes

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Alsaadah1/Hotel-Mate-sub000/constants"
	"github.com/Alsaadah1/Hotel-Mate-sub000/controllers"
	middlewares "github.com/Alsaadah1/Hotel-Mate-sub000/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	userController := controllers.NewUserController(db, redisCli)
	roomController := controllers.NewRoomController(db, redisCli)
	bookingController := controllers.NewBookingController(db, redisCli, m)
	revenueController := controllers.NewRevenueController(db)
	searchController := controllers.NewSearchController(db, redisCli)

	router.Use(middlewares.ErrorHandler())

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)

	v1.GET("/users", middlewares.AuthMiddleware(constants.RoleOwner), userController.GetUsers)
	v1.POST("/users", middlewares.AuthMiddleware(constants.RoleOwner), userController.CreateUser)
	v1.GET("/users/:id", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleStaff), userController.GetUserByID)
	v1.PUT("/users", middlewares.AuthMiddleware(), userController.UpdateUser)
	v1.PUT("/userStatus", middlewares.AuthMiddleware(constants.RoleOwner), userController.ChangeUserStatus)
	v1.GET("/profile", middlewares.AuthMiddleware(), userController.GetProfile)

	v1.GET("/room", roomController.GetAllRooms)
	v1.POST("/room", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleStaff), roomController.CreateRoom)
	v1.GET("/room/:id", roomController.GetRoomDetail)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleStaff), roomController.UpdateRoom)
	v1.DELETE("/room/:id", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleStaff), roomController.DeleteRoom)
	v1.GET("/checkRoom/:id", roomController.GetRoomBookingDates)

	v1.GET("/search", searchController.SearchRooms)
	v1.GET("/searchES", searchController.SearchRoomsES)
	v1.POST("/syncElastic", middlewares.AuthMiddleware(constants.RoleOwner), searchController.SyncElastic)
	v1.DELETE("/searchFilters", searchController.ClearSearchFilters)

	v1.POST("/booking", bookingController.CreateBooking)
	v1.GET("/booking", bookingController.GetBookings)
	v1.PUT("/bookingUpdate", bookingController.ChangeBookingStatus)
	v1.GET("/booking/:id", bookingController.GetBookingDetail)
	v1.GET("/bookingHistory", bookingController.GetBookingsByCustomer)
	v1.POST("/bookingQuote", bookingController.QuoteBooking)

	//doanh thu
	v1.GET("/revenue", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleStaff), revenueController.GetTotalRevenue)
	v1.GET("/today", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleStaff), revenueController.GetTodayRevenue)
	v1.GET("/ownerRevenue", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleStaff), revenueController.GetOwnerRevenue)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		fmt.Println("Broadcasting message:", string(message))
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

}
