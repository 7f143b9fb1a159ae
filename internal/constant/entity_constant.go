package constant

// Entity names reported in error bodies and alert headers.
const (
	ParentEntityName = "sampleParentEntity"
	ChildEntityName  = "sampleChildEntity"
)

// Fiber locals set by the JWT middleware.
const (
	LocalsUserId    = "user_id"
	LocalsLogin     = "login"
	LocalsRequestId = "request_id"
)

const (
	HeaderRequestId  = "X-Request-Id"
	HeaderTotalCount = "X-Total-Count"
)
