// Package cli implements the interactive terminal frontend of the portal
// client: the command loop, the login flow, the profile screens, the
// employee roster and user provisioning.
package cli
