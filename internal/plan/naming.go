package plan

import "fmt"

// Naming functions for resource identities.
// All resources follow the {project}-{env}-{role} pattern so that a plan for
// one environment never collides with another and every identity is
// reproducible across runs.

func prefixed(project, env, role string) Identity {
	return Identity(fmt.Sprintf("%s-%s-%s", project, env, role))
}

func Network(project, env string) Identity {
	return prefixed(project, env, "network")
}

func NATGateway(project, env string, index int) Identity {
	return prefixed(project, env, fmt.Sprintf("nat-%d", index))
}

func Registry(project, env string) Identity {
	return prefixed(project, env, "registry")
}

func Service(project, env string) Identity {
	return prefixed(project, env, "service")
}

func AppSecurityGroup(project, env string) Identity {
	return prefixed(project, env, "app-sg")
}

func RelationalDatabase(project, env string) Identity {
	return prefixed(project, env, "postgres-db")
}

func RelationalSecurityGroup(project, env string) Identity {
	return prefixed(project, env, "rds-sg")
}

func CacheCluster(project, env string) Identity {
	return prefixed(project, env, "redis-cluster")
}

func CacheSecurityGroup(project, env string) Identity {
	return prefixed(project, env, "redis-sg")
}

func ScrapeQueue(project, env string) Identity {
	return prefixed(project, env, "scraping-queue")
}

func ScrapeDeadLetterQueue(project, env string) Identity {
	return prefixed(project, env, "scraping-dlq")
}

func ScrapeFunction(project, env string) Identity {
	return prefixed(project, env, "scraping-fn")
}

func SocketAPI(project, env string) Identity {
	return prefixed(project, env, "socket-api")
}

func SocketRoute(project, env, route string) Identity {
	return prefixed(project, env, fmt.Sprintf("socket-route-%s", route))
}

func UploadBucket(project, env string) Identity {
	return prefixed(project, env, "upload-bucket")
}

func UploadFunction(project, env string) Identity {
	return prefixed(project, env, "upload-fn")
}

func AlarmTopic(project, env string) Identity {
	return prefixed(project, env, "alarm-topic")
}

func Alarm(project, env, name string) Identity {
	return prefixed(project, env, fmt.Sprintf("%s-alarm", name))
}

// CredentialsSecret names the generated database credential secret.
func CredentialsSecret(project, env string) string {
	return fmt.Sprintf("%s-%s-db-credentials", project, env)
}
