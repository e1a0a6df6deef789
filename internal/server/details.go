package server

import (
	"strings"

	"rosgraph/pkg/graph"
)

// NodeDetails describes a single node and the topics it touches.
type NodeDetails struct {
	Name        string   `json:"name"`
	Namespace   string   `json:"namespace"`
	Publishers  []string `json:"publishers"`
	Subscribers []string `json:"subscribers"`
}

// TopicDetails describes a single topic and the nodes on each side.
type TopicDetails struct {
	Name        string   `json:"name"`
	Types       []string `json:"types"`
	Publishers  []string `json:"publishers"`
	Subscribers []string `json:"subscribers"`
}

// nodeDetails derives node details from a snapshot. Publishers lists the
// topics the node publishes to, Subscribers the topics it subscribes to.
func nodeDetails(g graph.Graph, name string) (NodeDetails, bool) {
	id := graph.NodeID(name)

	var found *graph.Node
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			found = &g.Nodes[i]
			break
		}
	}
	if found == nil {
		return NodeDetails{}, false
	}

	details := NodeDetails{
		Name:        name,
		Namespace:   found.Data.Namespace,
		Publishers:  []string{},
		Subscribers: []string{},
	}

	for _, e := range g.Edges {
		switch {
		case e.Source == id:
			details.Publishers = append(details.Publishers, topicName(e.Target))
		case e.Target == id:
			details.Subscribers = append(details.Subscribers, topicName(e.Source))
		}
	}

	return details, true
}

// topicDetails derives topic details from a snapshot. Publishers and
// Subscribers list node names connected to the topic.
func topicDetails(g graph.Graph, name string) (TopicDetails, bool) {
	id := graph.TopicID(name)

	var found *graph.Node
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			found = &g.Nodes[i]
			break
		}
	}
	if found == nil {
		return TopicDetails{}, false
	}

	details := TopicDetails{
		Name:        name,
		Types:       []string{},
		Publishers:  []string{},
		Subscribers: []string{},
	}
	if found.Data.MessageType != "" {
		details.Types = append(details.Types, found.Data.MessageType)
	}

	for _, e := range g.Edges {
		switch {
		case e.Target == id:
			details.Publishers = append(details.Publishers, nodeName(e.Source))
		case e.Source == id:
			details.Subscribers = append(details.Subscribers, nodeName(e.Target))
		}
	}

	return details, true
}

func topicName(id string) string { return strings.TrimPrefix(id, "topic-") }

func nodeName(id string) string { return strings.TrimPrefix(id, "node-") }
