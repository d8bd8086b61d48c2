// Package preflight runs environment checks before scriptdesk touches the
// library: directory permissions and a trial open of the script database.
// Results feed the doctor command.
package preflight
