// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// DefaultFileAttributeNames lists the key names whose string values denote
// filesystem paths and are therefore rewritten by [AddBasePath].
var DefaultFileAttributeNames = []string{
	"server_key",
	"server_cert",
	"filename",
	"template_dir",
	"private_path",
	"public_path",
	"db_file",
}

// DefaultURIAttributeNames lists the key names whose values are template
// strings (or sequences of template strings) carrying {domain}/{port}
// placeholders.
var DefaultURIAttributeNames = []string{"issuer", "base_url"}

// The "class" and "function" strings below are registry identifiers resolved
// by the component factory. The engine treats them as opaque.

// DefaultConfig is the static fallback table used by [NewOPConfiguration]
// when the raw tree omits a provider attribute. Entries are deep-copied on
// merge; the table itself must never be mutated.
var DefaultConfig = RawConfig{
	"cookie_handler": RawConfig{
		"class": "oidc.cookie.Handler",
		"kwargs": RawConfig{
			"keys": RawConfig{
				"private_path": "private/cookie_jwks.json",
				"key_defs": []any{
					RawConfig{"type": "OCT", "use": []any{"enc"}, "kid": "enc"},
					RawConfig{"type": "OCT", "use": []any{"sig"}, "kid": "sig"},
				},
				"read_only": false,
			},
			"name": RawConfig{
				"session":            "oidc_op",
				"register":           "oidc_op_rp",
				"session_management": "sman",
			},
		},
	},
	"authz": RawConfig{
		"class": "oidc.authz.Handling",
		"kwargs": RawConfig{
			"grant_config": RawConfig{
				"usage_rules": RawConfig{
					"authorization_code": RawConfig{
						"supports_minting": []any{"access_token", "refresh_token", "id_token"},
						"max_usage":        1,
					},
					"access_token": RawConfig{},
					"refresh_token": RawConfig{
						"supports_minting": []any{"access_token", "refresh_token"},
					},
				},
				"expires_in": 43200,
			},
		},
	},
	"httpc_params": RawConfig{"verify": false},
	"issuer":       "https://{domain}:{port}",
	"session_key": RawConfig{
		"filename": "private/session_jwk.json",
		"type":     "OCT",
		"use":      "sig",
	},
	"template_dir": "templates",
	"token_handler_args": RawConfig{
		"jwks_file": "private/token_jwks.json",
		"code":      RawConfig{"kwargs": RawConfig{"lifetime": 600}},
		"token": RawConfig{
			"class":  "oidc.token.JWT",
			"kwargs": RawConfig{"lifetime": 3600},
		},
		"refresh": RawConfig{
			"class":  "oidc.token.JWT",
			"kwargs": RawConfig{"lifetime": 86400},
		},
		"id_token": RawConfig{
			"class":  "oidc.token.IDToken",
			"kwargs": RawConfig{},
		},
	},
}

// DefaultExtendedConfig is an alternative default table for full-featured
// deployments. On top of [DefaultConfig] it supplies a complete endpoint
// map, an authentication method, provider capabilities, signing keys, and
// the PKCE and custom-scopes add-ons. Select it per build via
// [BuildOptions.Defaults].
var DefaultExtendedConfig = RawConfig{
	"add_on": RawConfig{
		"pkce": RawConfig{
			"function": "oidc.addon.PKCE",
			"kwargs": RawConfig{
				"essential":             false,
				"code_challenge_method": "S256 S384 S512",
			},
		},
		"claims": RawConfig{
			"function": "oidc.addon.CustomScopes",
			"kwargs": RawConfig{
				"research_and_scholarship": []any{
					"name", "given_name", "family_name", "email",
					"email_verified", "sub", "iss", "eduperson_scoped_affiliation",
				},
			},
		},
	},
	"authz": DefaultConfig["authz"],
	"authentication": RawConfig{
		"user": RawConfig{
			"acr":   "oidc.authn.InternetProtocolPassword",
			"class": "oidc.authn.UserPass",
			"kwargs": RawConfig{
				"verify_endpoint": "verify/user",
				"template":        "user_pass.jinja2",
				"db": RawConfig{
					"class":  "oidc.util.JSONDictDB",
					"kwargs": RawConfig{"filename": "passwd.json"},
				},
				"page_header":  "Testing log in",
				"submit_btn":   "Get me in!",
				"user_label":   "Nickname",
				"passwd_label": "Secret sauce",
			},
		},
	},
	"capabilities": RawConfig{
		"subject_types_supported": []any{"public", "pairwise"},
		"grant_types_supported": []any{
			"authorization_code",
			"implicit",
			"urn:ietf:params:oauth:grant-type:jwt-bearer",
			"refresh_token",
		},
	},
	"cookie_handler": DefaultConfig["cookie_handler"],
	"endpoint": RawConfig{
		"webfinger": RawConfig{
			"path":   ".well-known/webfinger",
			"class":  "oidc.endpoint.Discovery",
			"kwargs": RawConfig{"client_authn_method": nil},
		},
		"provider_info": RawConfig{
			"path":   ".well-known/openid-configuration",
			"class":  "oidc.endpoint.ProviderConfiguration",
			"kwargs": RawConfig{"client_authn_method": nil},
		},
		"registration": RawConfig{
			"path":  "registration",
			"class": "oidc.endpoint.Registration",
			"kwargs": RawConfig{
				"client_authn_method":           nil,
				"client_secret_expiration_time": 432000,
			},
		},
		"registration_api": RawConfig{
			"path":   "registration_api",
			"class":  "oidc.endpoint.RegistrationRead",
			"kwargs": RawConfig{"client_authn_method": []any{"bearer_header"}},
		},
		"introspection": RawConfig{
			"path":  "introspection",
			"class": "oidc.endpoint.Introspection",
			"kwargs": RawConfig{
				"client_authn_method": []any{"client_secret_post"},
				"release":             []any{"username"},
			},
		},
		"authorization": RawConfig{
			"path":  "authorization",
			"class": "oidc.endpoint.Authorization",
			"kwargs": RawConfig{
				"client_authn_method":             nil,
				"claims_parameter_supported":      true,
				"request_parameter_supported":     true,
				"request_uri_parameter_supported": true,
				"response_types_supported": []any{
					"code", "token", "id_token",
					"code token", "code id_token", "id_token token",
					"code id_token token",
				},
				"response_modes_supported": []any{"query", "fragment", "form_post"},
			},
		},
		"token": RawConfig{
			"path":  "token",
			"class": "oidc.endpoint.Token",
			"kwargs": RawConfig{
				"client_authn_method": []any{
					"client_secret_post",
					"client_secret_basic",
					"client_secret_jwt",
					"private_key_jwt",
				},
			},
		},
		"userinfo": RawConfig{
			"path":  "userinfo",
			"class": "oidc.endpoint.UserInfo",
			"kwargs": RawConfig{
				"claim_types_supported": []any{"normal", "aggregated", "distributed"},
			},
		},
		"end_session": RawConfig{
			"path":  "session",
			"class": "oidc.endpoint.Session",
			"kwargs": RawConfig{
				"logout_verify_url":                      "verify_logout",
				"post_logout_uri_path":                   "post_logout",
				"signing_alg":                            "ES256",
				"frontchannel_logout_supported":          true,
				"frontchannel_logout_session_supported":  true,
				"backchannel_logout_supported":           true,
				"backchannel_logout_session_supported":   true,
				"check_session_iframe":                   "check_session_iframe",
			},
		},
	},
	"httpc_params": RawConfig{"verify": false},
	"issuer":       "https://{domain}:{port}",
	"keys": RawConfig{
		"private_path": "private/jwks.json",
		"key_defs": []any{
			RawConfig{"type": "RSA", "use": []any{"sig"}},
			RawConfig{"type": "EC", "crv": "P-256", "use": []any{"sig"}},
		},
		"public_path": "static/jwks.json",
		"read_only":   false,
		"uri_path":    "static/jwks.json",
	},
	"login_hint2acrs": RawConfig{
		"class": "oidc.login_hint.LoginHint2ACRs",
		"kwargs": RawConfig{
			"scheme_map": RawConfig{
				"email": []any{"oidc.authn.InternetProtocolPassword"},
			},
		},
	},
	"session_key": RawConfig{
		"filename": "private/session_jwk.json",
		"type":     "OCT",
		"use":      "sig",
	},
	"template_dir": "templates",
	"token_handler_args": RawConfig{
		"jwks_def": RawConfig{
			"private_path": "private/token_jwks.json",
			"read_only":    false,
			"key_defs": []any{
				RawConfig{"type": "oct", "bytes": "24", "use": []any{"enc"}, "kid": "code"},
			},
		},
		"code": RawConfig{"kwargs": RawConfig{"lifetime": 600}},
		"token": RawConfig{
			"class": "oidc.token.JWT",
			"kwargs": RawConfig{
				"lifetime":             3600,
				"add_claims_by_scope":  true,
				"aud":                  []any{"https://example.org/appl"},
			},
		},
		"refresh": RawConfig{
			"class": "oidc.token.JWT",
			"kwargs": RawConfig{
				"lifetime": 3600,
				"aud":      []any{"https://example.org/appl"},
			},
		},
		"id_token": RawConfig{
			"class": "oidc.token.IDToken",
			"kwargs": RawConfig{
				"base_claims": RawConfig{
					"email":          RawConfig{"essential": true},
					"email_verified": RawConfig{"essential": true},
				},
			},
		},
	},
	"userinfo": RawConfig{
		"class":  "oidc.userinfo.UserInfo",
		"kwargs": RawConfig{"db_file": "users.json"},
	},
}
