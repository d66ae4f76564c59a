package middleware

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_club_backend/pkg/utils"
)

// LocalOnly rejects requests that do not come from the loopback interface. The
// desktop shell on the same machine is the only client this server has.
func LocalOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
		if err != nil {
			host = c.Request.RemoteAddr
		}
		ip := net.ParseIP(host)
		if ip == nil || !ip.IsLoopback() {
			utils.LogWarn("Rejected non-local request", map[string]interface{}{"remote_addr": c.Request.RemoteAddr, "path": c.Request.URL.Path})
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Only local clients are allowed", ""))
			return
		}
		c.Next()
	}
}
