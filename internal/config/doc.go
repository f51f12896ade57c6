// Package config defines the inventory file model and the runtime settings
// used by the provisioning commands.
//
// The [InventoryConfig] struct is the operator's desired state: the
// organization, the shared SAN connectivity policy, the server profile
// template, and the list of profiles to create with their WWPN
// reservations. It is loaded once and only ever mutated to record
// reservation moids as they are created.
//
// [Settings] carries credentials, endpoint, request timeout and logging
// options. They are resolved with viper from flags and INTERSIGHT_*
// environment variables (optionally seeded from a .env file) and passed
// explicitly to the API client; nothing below the CLI layer reads the
// process environment.
package config
