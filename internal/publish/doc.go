// Package publish writes rendered pages to their destination.
//
// A Sink stores one object per page. DirSink writes into an output
// directory; S3Sink uploads to a bucket:
//
//	sink, err := publish.NewS3SinkFromConfig(ctx, cfg.Publish)
//	if err != nil {
//	    return err
//	}
//	err = sink.Put(ctx, publish.KeyFor("blog/first.hcl"), html, "")
package publish
