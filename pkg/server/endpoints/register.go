package endpoints

import (
	"github.com/folioboard/folioboard/pkg/server"
)

// RegisterEndpoints adds all the endpoints to the server's router
func RegisterEndpoints(s *server.Server) {
	RegisterAuthEndpoints(s)
	RegisterWhoamiEndpoint(s)
	RegisterProjectsEndpoints(s)
	RegisterCompaniesEndpoints(s)
	RegisterJobsEndpoints(s)
	RegisterApplicationsEndpoints(s)
	RegisterBlogEndpoints(s)
	RegisterCommentsEndpoints(s)
	RegisterProfileEndpoints(s)
	RegisterSubscriptionsEndpoints(s)
}
