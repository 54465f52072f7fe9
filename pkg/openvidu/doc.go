// Package openvidu contains typed value objects for the OpenVidu REST
// payloads (connections, publishers, recordings, session and recording
// properties) plus default-filling builders that turn decoded JSON maps
// into those values. No network calls live here.
package openvidu
