package auth

// Gmail OAuth2 scopes requested by default.
const (
	ScopeGmailReadonly = "https://www.googleapis.com/auth/gmail.readonly"
	ScopeGmailSend     = "https://www.googleapis.com/auth/gmail.send"
	ScopeGmailCompose  = "https://www.googleapis.com/auth/gmail.compose"
	ScopeGmailModify   = "https://www.googleapis.com/auth/gmail.modify"
)

// Environment variables consulted by the API-key specializations.
const (
	EnvOpenWeatherMapAPIKey = "OPENWEATHERMAP_API_KEY"
	EnvFirecrawlAPIKey      = "FIRECRAWL_API_KEY"
)

// Gmail returns the Gmail OAuth2 requirement. Without arguments it
// requests the readonly, send, compose, and modify scopes.
func Gmail(scopes ...string) OAuth2 {
	if len(scopes) == 0 {
		scopes = []string{
			ScopeGmailReadonly,
			ScopeGmailSend,
			ScopeGmailCompose,
			ScopeGmailModify,
		}
	}
	return OAuth2{Scopes: scopes}
}

// GitHub returns the GitHub OAuth2 requirement. Without arguments it
// requests the repo and user scopes.
func GitHub(scopes ...string) OAuth2 {
	if len(scopes) == 0 {
		scopes = []string{"repo", "user"}
	}
	return OAuth2{Scopes: scopes}
}

// OpenWeatherMap returns the OpenWeatherMap API-key requirement.
func OpenWeatherMap() APIKey {
	return APIKey{EnvVar: EnvOpenWeatherMapAPIKey}
}

// Firecrawl returns the Firecrawl API-key requirement.
func Firecrawl() APIKey {
	return APIKey{EnvVar: EnvFirecrawlAPIKey}
}
