package rpc

// Method is the name of a remote procedure. The set is closed: every
// operation the client performs is one of the constants below.
type Method string

// Registrar methods.
const (
	MethodListDomains    Method = "list-domains"
	MethodGetDomain      Method = "get-domain"
	MethodFindDomains    Method = "find-domains"
	MethodRegisterDomain Method = "register-domain"
	MethodCheckTask      Method = "check-task"
)

// DNS record methods.
const (
	MethodListRecords  Method = "list-records"
	MethodAddRecord    Method = "add-record"
	MethodEditRecord   Method = "edit-record"
	MethodRemoveRecord Method = "remove-record"
)

// Server methods.
const (
	MethodListServers      Method = "list-servers"
	MethodListServerImages Method = "list-server-images"
	MethodListServerTypes  Method = "list-server-types"
	MethodAddServer        Method = "add-server"
	MethodStopServer       Method = "stop-server"
	MethodStartServer      Method = "start-server"
	MethodRestartServer    Method = "restart-server"
	MethodResetServer      Method = "reset-server"
	MethodRemoveServer     Method = "remove-server"
)

var knownMethods = map[Method]bool{
	MethodListDomains:      true,
	MethodGetDomain:        true,
	MethodFindDomains:      true,
	MethodRegisterDomain:   true,
	MethodCheckTask:        true,
	MethodListRecords:      true,
	MethodAddRecord:        true,
	MethodEditRecord:       true,
	MethodRemoveRecord:     true,
	MethodListServers:      true,
	MethodListServerImages: true,
	MethodListServerTypes:  true,
	MethodAddServer:        true,
	MethodStopServer:       true,
	MethodStartServer:      true,
	MethodRestartServer:    true,
	MethodResetServer:      true,
	MethodRemoveServer:     true,
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	return knownMethods[m]
}

func (m Method) String() string {
	return string(m)
}
