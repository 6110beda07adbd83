// Package web provides the Firecrawl tool provider for scraping,
// crawling, and mapping websites.
//
// Six tools are exposed: ScrapeURL, CrawlWebsite, GetCrawlStatus,
// GetCrawlData, CancelCrawl, and MapWebsite. All of them require the
// FIRECRAWL_API_KEY secret. Scraped content is previewed rather than
// returned whole so responses stay within conversational bounds.
package web
