package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	handler "personal-finance-backend/internal/handlers"
	"personal-finance-backend/internal/repository"
	"personal-finance-backend/internal/services"
)

// entityHandler is the route set every entity exposes.
type entityHandler interface {
	Count(c *gin.Context)
	List(c *gin.Context)
	GetByID(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RequestID tags every response so a client report can be matched to
// the server log.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	bankRepo := repository.NewBankRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	provisionRepo := repository.NewProvisionRepository(db)
	tagRepo := repository.NewTagRepository(db)

	bankHandler := handler.NewBankHandler(services.NewBankService(bankRepo))
	accountHandler := handler.NewAccountHandler(services.NewAccountService(accountRepo, bankRepo))
	historyHandler := handler.NewHistoryHandler(services.NewHistoryService(historyRepo, accountRepo, tagRepo))
	provisionHandler := handler.NewProvisionHandler(services.NewProvisionService(provisionRepo))
	tagHandler := handler.NewTagHandler(services.NewTagService(tagRepo))

	r.Use(RequestID())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	register := func(base string, h entityHandler) {
		g := r.Group(base)
		g.GET("/count", h.Count)
		g.GET("", h.List)
		g.GET("/:id", h.GetByID)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	register("/banks", bankHandler)
	register("/accounts", accountHandler)
	register("/histories", historyHandler)
	register("/provisions", provisionHandler)
	register("/tags", tagHandler)
}
