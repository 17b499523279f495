// Package classifier provides implementations of core.Classifier: a
// deterministic rule-based keyword classifier (the default) plus the label
// contract shared by the model-backed adapters in the openai and anthropic
// sub-packages and the Redis read-through cache in cached. All
// implementations return labels from the closed enumerations or a
// *core.ClassificationError; none ever invents a label.
package classifier
