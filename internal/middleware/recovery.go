package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"moodmeter-srv/pkg/discord"
	"moodmeter-srv/pkg/log"
	"moodmeter-srv/pkg/response"
)

// Recovery turns handler panics into a 500 response. When a Discord
// client is configured the panic is also forwarded to the ops webhook.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				if discordClient != nil {
					desc := fmt.Sprintf("%v (%s %s)", err, c.Request.Method, c.Request.URL.Path)
					if sendErr := discordClient.SendWarning(ctx, "Handler panic", desc); sendErr != nil {
						logger.Warnf(ctx, "Failed to report panic to Discord: %v", sendErr)
					}
				}

				response.InternalErr(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}
