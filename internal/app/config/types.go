package config

type (
	DriverConfig struct {
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	RabbitMQ struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
		VHost    string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App        App
		BookingAPI BookingAPI
		Session    Session
		Calendar   Calendar
		RabbitMQ   AppRabbitMQ
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		AllowedOrigins             []string
		MaxRequests                int
		AuthMaxRequestsPerMinute   int
		AuthBlockTimeInMinutes     int
		RequestTimeoutInSeconds    int
		ShutdownTimeoutInSeconds   int
		RequestBodyLimitInMegabyte int
	}

	BookingAPI struct {
		BaseUrl          string
		TimeoutInSeconds int
	}

	Session struct {
		ExpiredTimeInHours int
		CookieSecure       bool
		CookieDomain       string
	}

	Calendar struct {
		Locale    string
		ProductID string
		Name      string
		UIDDomain string
	}

	AppRabbitMQ struct {
		BookingEventsQueue string
	}
)
